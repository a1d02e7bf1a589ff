package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"weekly-check/internal/logger"
	"weekly-check/internal/model"
	"weekly-check/internal/sheets"
)

// DirectoryService loads the member directory from the Members range.
// Passwords live in the sheet in plaintext and are compared exactly; the
// directory sheet is the source of truth and is edited out of band.
type DirectoryService struct {
	store sheets.Store
	rng   string
}

func NewDirectoryService(store sheets.Store, rng string) *DirectoryService {
	return &DirectoryService{store: store, rng: rng}
}

var memberHeader = []string{"username", "name", "password"}

func (s *DirectoryService) Load(ctx context.Context) (map[string]model.User, error) {
	rows, err := s.store.Read(ctx, s.rng)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 || !headerMatches(rows[0]) {
		return nil, fmt.Errorf("members range %s: malformed header", s.rng)
	}

	users := make(map[string]model.User, len(rows)-1)
	for i, row := range rows[1:] {
		// A member without a display name could log in but never write a
		// parseable record row, so the row is unusable either way.
		if len(row) < 3 || strings.TrimSpace(row[0]) == "" || strings.TrimSpace(row[1]) == "" {
			logger.Warn("directory.row_skipped", "row", i+2)
			continue
		}
		u := model.User{
			Username: strings.TrimSpace(row[0]),
			Name:     strings.TrimSpace(row[1]),
			Password: row[2],
		}
		users[u.Username] = u
	}
	return users, nil
}

// Users returns the full directory sorted by display name, for the chart
// projection's left join.
func (s *DirectoryService) Users(ctx context.Context) ([]model.User, error) {
	byName, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(byName))
	for _, u := range byName {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users, nil
}

// Authenticate keeps unknown-user and wrong-password as separate outcomes.
// Handlers collapse them into one user-facing message but log them apart.
func (s *DirectoryService) Authenticate(ctx context.Context, username, password string) (model.User, error) {
	users, err := s.Load(ctx)
	if err != nil {
		return model.User{}, err
	}
	u, ok := users[username]
	if !ok {
		return model.User{}, model.ErrUnknownUser
	}
	if u.Password != password {
		return model.User{}, model.ErrWrongPassword
	}
	return u, nil
}

func headerMatches(row []string) bool {
	if len(row) < len(memberHeader) {
		return false
	}
	for i, want := range memberHeader {
		if !strings.EqualFold(strings.TrimSpace(row[i]), want) {
			return false
		}
	}
	return true
}
