package kizuna_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/junioryono/kizuna"
)

type Config struct {
	DSN string
}

type Database struct {
	DSN string
}

type UserService struct {
	DB *Database
}

func (s *UserService) Name(id int) string {
	return fmt.Sprintf("user-%d@%s", id, s.DB.DSN)
}

// Example demonstrates binding services and invoking a handler with them.
func Example() {
	l := kizuna.New()

	kizuna.Insert(l, Config{DSN: "memory"})
	kizuna.InsertWith(l, func(l *kizuna.Locator) *Database {
		return &Database{DSN: kizuna.MustGet[Config](l).DSN}
	})
	kizuna.InsertWith(l, func(l *kizuna.Locator) *UserService {
		return &UserService{DB: kizuna.MustGet[*Database](l)}
	})

	name, err := kizuna.Invoke1(l, func(s *UserService) string {
		return s.Name(1)
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(name)
	// Output: user-1@memory
}

// ExampleTryInsertWith demonstrates a binding whose construction can fail.
func ExampleTryInsertWith() {
	l := kizuna.New()

	kizuna.TryInsertWith(l, func(l *kizuna.Locator) (*Database, error) {
		cfg, ok := kizuna.Get[Config](l)
		if !ok {
			return nil, kizuna.NotFound[Config]()
		}
		return &Database{DSN: cfg.DSN}, nil
	})

	_, err := kizuna.TryGet[*Database](l)
	fmt.Println(err)
	fmt.Println(errors.Is(err, kizuna.ErrNotFound))
	// Output:
	// unable to find `kizuna_test.Config` in locator
	// true
}

// ExampleInvokeAsync1 demonstrates awaiting a handler's future.
func ExampleInvokeAsync1() {
	l := kizuna.New()
	kizuna.Insert(l, &Database{DSN: "async"})

	dsn, err := kizuna.InvokeAsync1(context.Background(), l, func(db *Database) kizuna.Future[string] {
		return kizuna.Go(func() (string, error) { return db.DSN, nil })
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(dsn)
	// Output: async
}

// ExampleCall demonstrates invoking a handler known only at run time.
func ExampleCall() {
	l := kizuna.New()
	kizuna.Insert(l, 2)
	kizuna.Insert(l, "x")

	results, err := kizuna.Call(l, func(n int, s string) string {
		out := ""
		for range n {
			out += s
		}
		return out
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(results[0])
	// Output: xx
}
