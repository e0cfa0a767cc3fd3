// Command useradd provisions a dashboard identity. There is no signup
// endpoint; this is the only way accounts are created.
//
// Usage:
//
//	useradd -db innboard.db -email owner@example.com
//
// The password is read from stdin so it never lands in shell history.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rockpoolstays/innboard/internal/dashboard/domain"
	"github.com/rockpoolstays/innboard/internal/dashboard/store"
	"github.com/rockpoolstays/innboard/internal/dashboard/store/drivers/sqlite"
	"github.com/rockpoolstays/innboard/pkg/cryptox"
	"github.com/rockpoolstays/innboard/pkg/idx"
)

func main() {
	var (
		dbFile = flag.String("db", "innboard.db", "path to the sqlite database file")
		email  = flag.String("email", "", "email address for the new identity")
	)
	flag.Parse()

	if *email == "" {
		log.Fatal("-email is required")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	password, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		log.Fatalf("read password: %v", err)
	}
	password = strings.TrimRight(password, "\r\n")
	if password == "" {
		log.Fatal("password must not be empty")
	}

	st, err := sqlite.NewStore("file:" + *dbFile + "?_busy_timeout=5000")
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer st.Close()

	if err := st.ApplyMigrations(); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	u := domain.User{
		ID:           idx.New().String(),
		Email:        *email,
		PasswordHash: hash,
	}
	if err := st.Users().CreateUser(context.Background(), u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Fatalf("an identity with email %q already exists", *email)
		}
		log.Fatalf("create user: %v", err)
	}

	fmt.Printf("created %s (%s)\n", u.Email, u.ID)
}
