// Command shopctl runs administrative tasks against the shop database:
// spreadsheet exports, hiring, and schema migrations.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	shopv1 "coffeeShopManagement/api/shop/v1"
	"coffeeShopManagement/internal/config"
	"coffeeShopManagement/internal/db"
	"coffeeShopManagement/internal/export"
	grpcserver "coffeeShopManagement/internal/grpc"
	"coffeeShopManagement/models"
	"coffeeShopManagement/repository"
)

const usage = `usage: shopctl <command> [flags]

commands:
  export-products  write the product catalog to an .xlsx file
  export-shifts    write all shifts to an .xlsx file
  create-employee  add an employee
  set-status       activate or deactivate an employee by login
  migrate          apply pending migrations and print the schema version
  rollback         revert the last applied migration
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// opener is swapped in tests.
var opener = func(cfg *config.Config) (*sql.DB, error) {
	return db.OpenDriver(cfg.Database.Driver, cfg.Database.DSN)
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return errors.New("missing command")
	}
	cfg, err := config.LoadWithDefaults()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "export-products", "export-shifts":
		return runExport(cfg, cmd, rest, out)
	case "create-employee":
		return runCreateEmployee(cfg, rest, out)
	case "set-status":
		return runSetStatus(cfg, rest, out)
	case "migrate":
		return withDB(cfg, func(d *sql.DB) error {
			v, err := db.AppliedVersion(d)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "schema version %d\n", v)
			return nil
		})
	case "rollback":
		return withDB(cfg, func(d *sql.DB) error {
			if err := db.RollbackLast(d, cfg.Database.Driver); err != nil {
				return err
			}
			v, err := db.AppliedVersion(d)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "rolled back, schema version %d\n", v)
			return nil
		})
	case "help", "-h", "--help":
		fmt.Fprint(out, usage)
		return nil
	default:
		fmt.Fprint(out, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func withDB(cfg *config.Config, fn func(*sql.DB) error) error {
	d, err := opener(cfg)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer d.Close()
	return fn(d)
}

func runExport(cfg *config.Config, cmd string, args []string, out io.Writer) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(out)
	path := fs.String("out", "", "Output file (default: a new file in the temp directory)")
	open := fs.Bool("open", false, "Open the file with the default application")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return withDB(cfg, func(d *sql.DB) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var (
			data []byte
			kind string
			err  error
		)
		if cmd == "export-products" {
			kind = export.ProductsSheet
			var list []models.Product
			list, err = repository.NewProductRepository(d).List(ctx, models.ProductFilter{})
			if err == nil {
				data, err = export.Products(list)
			}
		} else {
			kind = export.ShiftsSheet
			var rows []models.ShiftRow
			rows, err = repository.NewShiftRepository(d).ListAll(ctx)
			if err == nil {
				data, err = export.Shifts(rows)
			}
		}
		if err != nil {
			return err
		}
		written, err := export.WriteFile(*path, kind, data)
		if err != nil {
			return fmt.Errorf("write file: %w", err)
		}
		fmt.Fprintf(out, "exported to %s\n", written)
		if *open {
			if err := export.Open(written); err != nil {
				return fmt.Errorf("open %s: %w", written, err)
			}
		}
		return nil
	})
}

func runCreateEmployee(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("create-employee", flag.ContinueOnError)
	fs.SetOutput(out)
	var req shopv1.CreateEmployeeRequest
	fs.StringVar(&req.FirstName, "first", "", "First name")
	fs.StringVar(&req.LastName, "last", "", "Last name")
	fs.StringVar(&req.Login, "login", "", "Login")
	fs.StringVar(&req.Password, "password", "", "Password")
	fs.StringVar(&req.BirthDate, "birth", "", "Birth date (YYYY-MM-DD)")
	fs.StringVar(&req.Position, "position", "", "Position")
	fs.StringVar(&req.Role, "role", "staff", "Role: staff or manager")
	if err := fs.Parse(args); err != nil {
		return err
	}
	e, err := grpcserver.NewEmployee(&req)
	if err != nil {
		return err
	}
	return withDB(cfg, func(d *sql.DB) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		created, err := repository.NewEmployeeRepository(d).Create(ctx, e)
		if errors.Is(err, repository.ErrDuplicate) {
			return fmt.Errorf("login %q is already taken", e.Login)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "created employee %d: %s (%s, %s)\n", created.ID, created.FullName(), created.Login, created.Role)
		return nil
	})
}

func runSetStatus(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("set-status", flag.ContinueOnError)
	fs.SetOutput(out)
	login := fs.String("login", "", "Employee login")
	value := fs.String("status", "", "active or inactive")
	if err := fs.Parse(args); err != nil {
		return err
	}
	st, err := grpcserver.ParseEmployeeStatus(*value)
	if err != nil {
		return err
	}
	return withDB(cfg, func(d *sql.DB) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		employees := repository.NewEmployeeRepository(d)
		e, err := employees.GetByLogin(ctx, *login)
		if err != nil {
			return err
		}
		if e == nil {
			return fmt.Errorf("no employee with login %q", *login)
		}
		if err := employees.UpdateStatus(ctx, e.ID, st); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s (%s) is now %s\n", e.FullName(), e.Login, st)
		return nil
	})
}
