// create-admin provisions an admin account. Self-registration is always
// role "user"; this command is the only way an admin comes into existence.
// An existing account with the given email is promoted instead.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"time"

	"hirely-api/config"
	"hirely-api/internal/database"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// generateRandomPassword creates a random hex string of n bytes.
func generateRandomPassword(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal(err)
	}
	return hex.EncodeToString(bytes)
}

func main() {
	email := flag.String("email", "", "admin email (required)")
	name := flag.String("name", "Admin", "admin display name")
	password := flag.String("password", "", "admin password (generated when empty)")
	flag.Parse()

	if *email == "" {
		log.Fatal("usage: create-admin -email admin@example.com [-name Admin] [-password secret]")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Promote an existing account if the email is already registered.
	tag, err := pool.Exec(ctx, `UPDATE users SET role = 'admin', updated_at = NOW() WHERE email = $1`, *email)
	if err != nil {
		log.Fatalf("Failed to promote user: %v", err)
	}
	if tag.RowsAffected() > 0 {
		fmt.Printf("Existing user %s promoted to admin\n", *email)
		fmt.Println("Only the role was changed; the account keeps its current name and password.")
		return
	}

	plain := *password
	if plain == "" {
		plain = generateRandomPassword(8)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'admin', NOW(), NOW())`,
		uuid.New(), *name, *email, string(hashedPassword))
	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Println("Admin account created successfully!")
	fmt.Println("======================================")
	fmt.Printf("Email:    %s\n", *email)
	if *password == "" {
		fmt.Printf("Password: %s\n", plain)
	}
	fmt.Println("======================================")
}
