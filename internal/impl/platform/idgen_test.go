package impl_platform_test

import (
	"testing"

	impl_platform "github.com/Danilo-Couto/simulador-de-pix/internal/impl/platform"
	"github.com/google/uuid"
)

func TestUUIDGenerator(t *testing.T) {
	gen := impl_platform.NewUUIDGenerator()

	a := gen.NewUUID()
	b := gen.NewUUID()

	if a == uuid.Nil || b == uuid.Nil {
		t.Fatal("expected non-nil uuids")
	}
	if a == b {
		t.Fatalf("expected distinct uuids, got %s twice", a)
	}
	if a.Version() != 4 {
		t.Errorf("expected version 4, got %d", a.Version())
	}
}
