package windialog

import (
	"errors"
	"testing"
)

func TestAcquireCOMOwnsFirstInitialization(t *testing.T) {
	f := newFake()

	g, err := acquireCOM(f)
	if err != nil {
		t.Fatalf("acquireCOM: %v", err)
	}
	if !g.owned {
		t.Error("first acquire should own the initialization")
	}
	g.release()
	if f.uninits != 1 {
		t.Errorf("uninits = %d, want 1", f.uninits)
	}
	if f.initialized {
		t.Error("COM left initialized")
	}
}

func TestAcquireCOMNestedDoesNotOwn(t *testing.T) {
	f := newFake()

	outer, err := acquireCOM(f)
	if err != nil {
		t.Fatalf("outer acquireCOM: %v", err)
	}
	inner, err := acquireCOM(f)
	if err != nil {
		t.Fatalf("inner acquireCOM: %v", err)
	}
	if inner.owned {
		t.Error("nested acquire must not own the initialization")
	}
	// 内側の解放では外側のコンテキストを壊さない
	inner.release()
	if f.uninits != 0 {
		t.Errorf("uninits after inner release = %d, want 0", f.uninits)
	}
	outer.release()
	if f.uninits != 1 {
		t.Errorf("uninits after outer release = %d, want 1", f.uninits)
	}
}

func TestGuardReleaseIsIdempotent(t *testing.T) {
	f := newFake()

	g, err := acquireCOM(f)
	if err != nil {
		t.Fatalf("acquireCOM: %v", err)
	}
	g.release()
	g.release()
	if f.uninits != 1 {
		t.Errorf("uninits = %d, want 1", f.uninits)
	}

	var nilGuard *comGuard
	nilGuard.release() // panic しないこと
}

func TestAcquireCOMFailure(t *testing.T) {
	f := newFake()
	f.failInitHR = eFail

	_, err := acquireCOM(f)
	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want *Error", err)
	}
	if ce.Stage != StageCreate || ce.Op != "CoInitializeEx" || ce.Code != eFail {
		t.Errorf("error = %+v", ce)
	}
	if f.uninits != 0 {
		t.Errorf("uninits = %d, want 0", f.uninits)
	}
}
