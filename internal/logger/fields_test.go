package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  course_id  ", Value: "  POLY-DKM  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "course_id" || fields[0].String != "POLY-DKM" {
		t.Fatalf("unexpected course field: %+v", fields[0])
	}

	empty := StringFields()
	if len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithFields(logger, zap.String("source", "poly"))
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["source"] != "poly" {
		t.Fatalf("expected field to be poly, got %q", ctx["source"])
	}

	enriched = WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}

	enriched.Info("another log")
}

func TestRunFields(t *testing.T) {
	fields := RunFields("  0b6c7a52  ", "rank")
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}

	if fields[0].Key != FieldRunID || fields[0].String != "0b6c7a52" {
		t.Fatalf("unexpected run id field: %+v", fields[0])
	}

	if fields[1].Key != FieldCommand || fields[1].String != "rank" {
		t.Fatalf("unexpected command field: %+v", fields[1])
	}

	if empty := RunFields("", ""); len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithRunFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithRunFields(zap.New(core), "run-1", "check").Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldRunID] != "run-1" || ctx[FieldCommand] != "check" {
		t.Fatalf("unexpected context: %v", ctx)
	}

	WithRunFields(nil, "run-1", "check").Info("another log")
}
