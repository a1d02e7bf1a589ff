package model

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type SubmitRequest struct {
	Week     int      `json:"week" binding:"required"`
	TestDate string   `json:"test_date" binding:"required"`
	Days     []string `json:"days"`
	Remark   string   `json:"remark"`
	Outcome  Outcome  `json:"outcome" binding:"required"`
}

type SubmitResponse struct {
	Record Record `json:"record"`
}
