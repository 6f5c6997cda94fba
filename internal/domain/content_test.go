package domain

import (
	"testing"
	"time"
)

func TestStampPublishFirstPublish(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	p := &BlogPost{}
	p.Published = true
	StampPublish(p, nil, now)

	if p.PublishedAt == nil {
		t.Fatal("publishedAt not stamped on first publish")
	}
	if !p.PublishedAt.Equal(now) {
		t.Errorf("publishedAt = %v, want %v", p.PublishedAt, now)
	}
}

func TestStampPublishDraftStaysNil(t *testing.T) {
	p := &BlogPost{}
	StampPublish(p, nil, time.Now())
	if p.PublishedAt != nil {
		t.Errorf("draft got publishedAt %v", p.PublishedAt)
	}
}

func TestStampPublishToggleKeepsTimestamp(t *testing.T) {
	first := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

	// Unpublish: flag off, timestamp preserved.
	p := &BlogPost{}
	p.Published = false
	StampPublish(p, &first, time.Now())
	if p.PublishedAt == nil || !p.PublishedAt.Equal(first) {
		t.Fatalf("unpublish changed publishedAt to %v", p.PublishedAt)
	}

	// Republish: timestamp does not move.
	p = &BlogPost{}
	p.Published = true
	StampPublish(p, &first, time.Now())
	if p.PublishedAt == nil || !p.PublishedAt.Equal(first) {
		t.Fatalf("republish moved publishedAt to %v", p.PublishedAt)
	}
}

func TestAttributeToClearsAssociation(t *testing.T) {
	p := &Publication{CreatedBy: &User{ID: "smuggled"}}
	p.AttributeTo("abc123")
	if p.CreatedByID != "abc123" {
		t.Errorf("CreatedByID = %q", p.CreatedByID)
	}
	if p.CreatedBy != nil {
		t.Error("payload-supplied CreatedBy not cleared")
	}
}
