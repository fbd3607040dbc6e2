package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"LawHub_LegalAssistant/internal/models"

	"modernc.org/sqlite"
)

// sqliteConstraintUnique is SQLITE_CONSTRAINT_UNIQUE.
const sqliteConstraintUnique = 2067

var (
	ErrUsernameExists = errors.New("username already exists")
	ErrUserNotFound   = errors.New("user not found")
)

func (s *Store) CreateUser(username, passwordHash string, profile models.UserProfile) (int, error) {
	stmt, err := s.db.Prepare("INSERT INTO users(username, password_hash, name, age, gender) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	res, err := stmt.Exec(username, passwordHash, profile.Name, profile.Age, profile.Gender)
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqliteConstraintUnique {
			return 0, ErrUsernameExists
		}
		return 0, fmt.Errorf("CreateUser(): %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateUser(): %w", err)
	}
	return int(id), nil
}

func (s *Store) GetUserByUsername(username string) (models.User, error) {
	var user models.User
	var nullAge sql.NullInt64
	var nullName, nullGender sql.NullString

	row := s.db.QueryRow("SELECT id, username, password_hash, name, age, gender FROM users WHERE username = ?", username)
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &nullName, &nullAge, &nullGender); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("GetUserByUsername(): %w", err)
	}

	user.Profile.Name = nullName.String
	user.Profile.Age = int(nullAge.Int64)
	user.Profile.Gender = nullGender.String
	return user, nil
}
