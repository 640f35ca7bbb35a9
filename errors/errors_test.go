package errors

import (
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		kind    *Error
		err     error
		wantHit bool
	}{
		"root error is itself": {
			kind:    ErrNotFound,
			err:     ErrNotFound,
			wantHit: true,
		},
		"wrapped error matches the root": {
			kind:    ErrNotFound,
			err:     Wrap(ErrNotFound, "gone"),
			wantHit: true,
		},
		"deeply wrapped error matches the root": {
			kind:    ErrNotFound,
			err:     Wrap(Wrap(ErrNotFound, "gone"), "sorry"),
			wantHit: true,
		},
		"different root does not match": {
			kind:    ErrNotFound,
			err:     ErrUnauthorized,
			wantHit: false,
		},
		"stdlib error does not match": {
			kind:    ErrNotFound,
			err:     fmt.Errorf("not found"),
			wantHit: false,
		},
		"nil error does not match": {
			kind:    ErrNotFound,
			err:     nil,
			wantHit: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.wantHit {
				t.Fatalf("kind.Is returned %v", got)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "ignored"); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
}

func TestWrapPreservesMessage(t *testing.T) {
	err := Wrap(ErrEmpty, "name")
	const want = "name: value is empty"
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestCode(t *testing.T) {
	cases := map[string]struct {
		err      error
		wantCode uint32
	}{
		"nil is no error":      {err: nil, wantCode: 0},
		"root error":           {err: ErrUnauthorized, wantCode: 2},
		"wrapped root error":   {err: Wrap(ErrUnauthorized, "nope"), wantCode: 2},
		"stdlib is internal":   {err: fmt.Errorf("x"), wantCode: 1},
		"custom double wrap":   {err: Wrap(Wrap(ErrOverflow, "a"), "b"), wantCode: 15},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := Code(tc.err); got != tc.wantCode {
				t.Fatalf("want code %d, got %d", tc.wantCode, got)
			}
		})
	}
}

func TestRegisterPanicsOnReuse(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("reusing an error code must panic")
		}
	}()
	Register(2, "duplicate of unauthorized")
}

func TestRecover(t *testing.T) {
	run := func() (err error) {
		defer Recover(&err)
		panic("exploded")
	}
	err := run()
	if !ErrPanic.Is(err) {
		t.Fatalf("want a panic error, got %+v", err)
	}
}
