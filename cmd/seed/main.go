// Command seed provisions a local database with demo data: one admin, three
// users, three polls (two OPEN, one CLOSED) and votes consistent with the
// one-vote-per-user-per-poll constraint. Safe to run repeatedly: users are
// upserted and existing polls are wiped first (votes go via cascade).
package main

import (
	"context"
	"database/sql"
	"log"

	"golang.org/x/crypto/bcrypt"

	"polls-api/internal/config"
	"polls-api/internal/domain/poll"
	"polls-api/internal/platform/database"
)

type seedUser struct {
	email    string
	password string
	role     string
}

func main() {
	cfg := config.Load()

	db, err := database.NewPostgres(cfg.DB_DSN)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	users := []seedUser{
		{"admin@polls.local", "Admin!123", "admin"},
		{"user1@polls.local", "User1!123", "user"},
		{"user2@polls.local", "User2!123", "user"},
		{"user3@polls.local", "User3!123", "user"},
	}

	ids := make(map[string]int64, len(users))
	for _, u := range users {
		id, err := upsertUser(ctx, db, u)
		if err != nil {
			log.Fatalf("seed user %s: %v", u.email, err)
		}
		ids[u.email] = id
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM polls`); err != nil {
		log.Fatalf("wipe polls: %v", err)
	}
	log.Println("existing polls wiped (votes deleted by cascade)")

	admin := ids["admin@polls.local"]
	reading := createPoll(ctx, db, "Reading", strPtr("How often do you read books during the year?"), admin)
	music := createPoll(ctx, db, "Music", strPtr("Do you listen to music every day?"), admin)
	cinema := createPoll(ctx, db, "Cinema", nil, admin)

	castVote(ctx, db, reading, ids["user1@polls.local"], 5)
	castVote(ctx, db, reading, ids["user2@polls.local"], 4)
	castVote(ctx, db, reading, ids["user3@polls.local"], 4)

	castVote(ctx, db, music, ids["user1@polls.local"], 3)
	castVote(ctx, db, music, ids["user2@polls.local"], 4)
	castVote(ctx, db, music, ids["user3@polls.local"], 4)

	castVote(ctx, db, cinema, ids["user1@polls.local"], 5)
	castVote(ctx, db, cinema, ids["user2@polls.local"], 3)

	// close one poll so the forbidden-vote path is testable out of the box
	if _, err := db.ExecContext(ctx,
		`UPDATE polls SET status = $1, updated_at = now() WHERE id = $2`,
		poll.StatusClosed, music,
	); err != nil {
		log.Fatalf("close poll: %v", err)
	}

	log.Println("admin login -> admin@polls.local / Admin!123")
	log.Println("user logins -> user1..user3@polls.local / UserX!123")
}

func upsertUser(ctx context.Context, db *sql.DB, u seedUser) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	var id int64
	err = db.QueryRowContext(ctx, `
        INSERT INTO users (email, password_hash, role)
        VALUES ($1, $2, $3)
        ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role
        RETURNING id
    `, u.email, string(hash), u.role).Scan(&id)
	return id, err
}

func createPoll(ctx context.Context, db *sql.DB, title string, description *string, createdBy int64) int64 {
	var id int64
	err := db.QueryRowContext(ctx, `
        INSERT INTO polls (title, description, status, created_by)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, title, description, poll.StatusOpen, createdBy).Scan(&id)
	if err != nil {
		log.Fatalf("seed poll %q: %v", title, err)
	}
	return id
}

func castVote(ctx context.Context, db *sql.DB, pollID, userID int64, rating int) {
	_, err := db.ExecContext(ctx, `
        INSERT INTO votes (poll_id, user_id, rating)
        VALUES ($1, $2, $3)
        ON CONFLICT (poll_id, user_id) DO UPDATE
        SET rating = EXCLUDED.rating, updated_at = now()
    `, pollID, userID, rating)
	if err != nil {
		log.Fatalf("seed vote poll=%d user=%d: %v", pollID, userID, err)
	}
}

func strPtr(s string) *string {
	return &s
}
