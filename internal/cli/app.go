// Package cli implements the interactive front end: credential
// prompts, the command parser, and the read-eval-print loop over an
// authenticated session. It is pure I/O glue; all record semantics
// live in the services package.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/mkoval-dev/lockbox/internal/common"
	"github.com/mkoval-dev/lockbox/internal/config"
	"github.com/mkoval-dev/lockbox/internal/logging"
	"github.com/mkoval-dev/lockbox/internal/repositories/repomanager"
	"github.com/mkoval-dev/lockbox/internal/services"
	"github.com/mkoval-dev/lockbox/internal/session"
)

type App struct {
	config  *config.Config
	store   *repomanager.Store
	records *services.RecordStore
	sess    *session.Session
	reader  *bufio.Reader
	log     logging.Logger
}

func NewApp(cfg *config.Config, store *repomanager.Store, log logging.Logger) *App {
	return &App{
		config:  cfg,
		store:   store,
		records: services.NewRecordStore(store, log),
		reader:  bufio.NewReader(os.Stdin),
		log:     log,
	}
}

// Run prompts for credentials, authenticates, and enters the REPL.
// The session is torn down (key material wiped) on every exit path.
func (a *App) Run(ctx context.Context) error {
	fmt.Println("Welcome to Lockbox (type 'help' for commands)")

	if err := a.login(ctx); err != nil {
		return err
	}
	defer a.sess.Close()

	runREPL(ctx, a, os.Stdin, os.Stdout)
	return nil
}

func (a *App) login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := session.Authenticate(ctx, a.store.Manager.Users(a.store.DB), username, string(password))
	if err != nil {
		fmt.Println("Could not authenticate.")
		return err
	}

	a.sess = sess
	a.log.Info(ctx, "session opened", "session_id", sess.ID())
	return nil
}

// Command handlers. Each maps 1:1 to a record store operation plus
// formatted console output.

func (a *App) Read(ctx context.Context, name string) error {
	content, err := a.records.Retrieve(ctx, a.sess, name)
	if err != nil {
		return err
	}
	fmt.Println(content)
	return nil
}

// Write creates the record, falling back to an edit when it already
// exists.
func (a *App) Write(ctx context.Context, name, content string) error {
	err := a.records.Create(ctx, a.sess, name, content)
	if err == nil {
		fmt.Println("Record created.")
		return nil
	}
	if !isRecordExists(err) {
		return err
	}
	if err := a.records.Edit(ctx, a.sess, name, content); err != nil {
		return err
	}
	fmt.Println("Record updated.")
	return nil
}

func (a *App) Delete(ctx context.Context, name string) error {
	if err := a.records.Delete(ctx, a.sess, name); err != nil {
		return err
	}
	fmt.Println("Record deleted.")
	return nil
}

func (a *App) List(ctx context.Context) error {
	names, err := a.records.List(ctx, a.sess)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("No records.")
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func (a *App) Share(ctx context.Context, name, user string) error {
	return a.records.Share(ctx, a.sess, name, user)
}
