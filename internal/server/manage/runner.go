// Package manage implements the administrative commands of recipeapp:
// schema migration and account management from a terminal.
package manage

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/recipeapp/internal/netx"
	"github.com/dmitrijs2005/recipeapp/internal/server/models"
	"github.com/dmitrijs2005/recipeapp/internal/server/services"
)

var ErrUsage = errors.New("usage error")

type Migrator interface {
	Migrate(ctx context.Context) error
}

// AccountManager is the part of services.AccountService the commands use.
type AccountManager interface {
	CreateUser(ctx context.Context, email, password string, opts ...services.AccountOption) (*models.Account, error)
	CreateSuperuser(ctx context.Context, email, password string, opts ...services.AccountOption) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	SetPassword(ctx context.Context, id, password string) error
}

// RecipeImages hands out presigned image upload URLs.
type RecipeImages interface {
	PresignImageUpload(ctx context.Context, userID, recipeID, filename string) (*models.ImageUpload, error)
}

// putPresigned is a test seam for netx.PutPresigned.
var putPresigned = netx.PutPresigned

type Runner struct {
	migrator Migrator
	accounts AccountManager
	images   RecipeImages
	in       *bufio.Reader
	out      io.Writer
	fd       int
}

// NewRunner builds a Runner reading answers from in and passwords from the
// terminal on stdin.
func NewRunner(m Migrator, accounts AccountManager, images RecipeImages, in io.Reader, out io.Writer) *Runner {
	return &Runner{
		migrator: m,
		accounts: accounts,
		images:   images,
		in:       bufio.NewReader(in),
		out:      out,
		fd:       int(os.Stdin.Fd()),
	}
}

const usage = `Usage: manage <command> [flags]

Commands:
  migrate                                  apply database migrations
  createsuperuser [-email e] [-name n]     create a staff superuser
  createuser [-email e] [-name n] [-staff] create a regular account
  changepassword <email>                   set a new password
  uploadimage <email> <recipe-id> <file>   upload a recipe image via a presigned URL
  help                                     show this message
`

// Run executes the command named by args[0].
func (r *Runner) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(r.out, usage)
		return ErrUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "migrate":
		return r.migrate(ctx)
	case "createsuperuser":
		return r.createAccount(ctx, rest, true)
	case "createuser":
		return r.createAccount(ctx, rest, false)
	case "changepassword":
		return r.changePassword(ctx, rest)
	case "uploadimage":
		return r.uploadImage(ctx, rest)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(r.out, usage)
		return nil
	default:
		fmt.Fprintf(r.out, "Unknown command: %s\n\n%s", cmd, usage)
		return ErrUsage
	}
}

func (r *Runner) migrate(ctx context.Context) error {
	if err := r.migrator.Migrate(ctx); err != nil {
		return err
	}
	fmt.Fprintln(r.out, "Migrations applied.")
	return nil
}

func (r *Runner) createAccount(ctx context.Context, args []string, superuser bool) error {
	name := "createuser"
	if superuser {
		name = "createsuperuser"
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(r.out)
	email := fs.String("email", "", "account email")
	displayName := fs.String("name", "", "display name")
	staff := fs.Bool("staff", false, "grant staff status (createuser only)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if *email == "" {
		var err error
		if *email, err = readLine(r.in, "Email address", r.out); err != nil {
			return err
		}
	}

	password, err := promptPassword(r.fd, r.out)
	if err != nil {
		return err
	}

	opts := []services.AccountOption{services.WithName(*displayName)}

	var a *models.Account
	if superuser {
		a, err = r.accounts.CreateSuperuser(ctx, *email, password, opts...)
	} else {
		opts = append(opts, services.WithStaff(*staff))
		a, err = r.accounts.CreateUser(ctx, *email, password, opts...)
	}
	if err != nil {
		return err
	}

	if superuser {
		fmt.Fprintf(r.out, "Superuser %s created successfully.\n", a)
	} else {
		fmt.Fprintf(r.out, "User %s created successfully.\n", a)
	}
	return nil
}

func (r *Runner) changePassword(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprint(r.out, "Usage: manage changepassword <email>\n")
		return ErrUsage
	}

	a, err := r.accounts.GetByEmail(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "Changing password for user %s\n", a)
	password, err := promptPassword(r.fd, r.out)
	if err != nil {
		return err
	}

	if err := r.accounts.SetPassword(ctx, a.ID, password); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Password changed successfully for user %s\n", a)
	return nil
}

// uploadImage presigns an upload for the owner's recipe and PUTs the file to it.
func (r *Runner) uploadImage(ctx context.Context, args []string) error {
	if len(args) != 3 {
		fmt.Fprint(r.out, "Usage: manage uploadimage <email> <recipe-id> <file>\n")
		return ErrUsage
	}
	email, recipeID, path := args[0], args[1], args[2]

	a, err := r.accounts.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	up, err := r.images.PresignImageUpload(ctx, a.ID, recipeID, filepath.Base(path))
	if err != nil {
		return err
	}

	if err := putPresigned(ctx, nil, up.URL, f, mime.TypeByExtension(filepath.Ext(path))); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Image stored as %s\n", up.Key)
	return nil
}
