package kizuna

import (
	"errors"
	"strings"
	"sync/atomic"
)

// ============================================================================
// Shared Test Types
// ============================================================================

// MyStruct is a plain value type.
type MyStruct struct {
	val int
}

// ServiceA is constructed without dependencies.
type ServiceA struct {
	Name string
}

// ServiceB depends on ServiceA.
type ServiceB struct {
	A *ServiceA
}

// ServiceC is never registered in most tests.
type ServiceC struct{}

// Greeter is a basic interface for testing.
type Greeter interface {
	Greet() string
}

// englishGreeter implements Greeter.
type englishGreeter struct {
	name string
}

func (g *englishGreeter) Greet() string { return "hello " + g.name }

// Tags implements Cloner so every lookup gets an independent slice.
type Tags []string

func (t Tags) Clone() Tags {
	return append(Tags(nil), t...)
}

func (t Tags) String() string {
	return strings.Join(t, ",")
}

// counter counts how often a factory ran.
type counter struct {
	calls atomic.Int64
}

func (c *counter) factory(l *Locator) int {
	return int(c.calls.Add(1))
}

var errBoom = errors.New("boom")

// T1..T12 are distinct types used for arity tests.
type (
	T1  int
	T2  int
	T3  int
	T4  int
	T5  int
	T6  int
	T7  int
	T8  int
	T9  int
	T10 int
	T11 int
	T12 int
	T13 int
)

// fullLocator binds T1..T12 to 1..12.
func fullLocator() *Locator {
	l := New()
	Insert(l, T1(1))
	Insert(l, T2(2))
	Insert(l, T3(3))
	Insert(l, T4(4))
	Insert(l, T5(5))
	Insert(l, T6(6))
	Insert(l, T7(7))
	Insert(l, T8(8))
	Insert(l, T9(9))
	Insert(l, T10(10))
	Insert(l, T11(11))
	Insert(l, T12(12))
	return l
}
