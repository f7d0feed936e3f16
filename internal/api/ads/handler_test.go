package ads

import (
	"testing"

	"construlab/config"
	"construlab/internal/domain/access"
)

func withConfig(t *testing.T, env, publisher string) {
	t.Helper()
	prevEnv, prevPub, prevHeader := config.APP_ENV, config.ADSENSE_PUBLISHER_ID, config.ADSENSE_SLOT_HEADER
	config.APP_ENV, config.ADSENSE_PUBLISHER_ID, config.ADSENSE_SLOT_HEADER = env, publisher, "1111"
	t.Cleanup(func() {
		config.APP_ENV, config.ADSENSE_PUBLISHER_ID, config.ADSENSE_SLOT_HEADER = prevEnv, prevPub, prevHeader
	})
}

func policy(state access.AccessState) access.Policy {
	return access.Policy{State: state, Capabilities: access.CapabilitiesFor(state)}
}

func TestBuildSlots_AdFreeUsers(t *testing.T) {
	withConfig(t, "production", "pub-123")
	for _, st := range []access.AccessState{access.AccessPro, access.AccessTrial, access.AccessAdmin, access.AccessBanned} {
		if got := BuildSlots(policy(st)); got.Enabled || len(got.Slots) != 0 {
			t.Fatalf("%s: expected no ads, got %+v", st, got)
		}
	}
}

func TestBuildSlots_PlaceholdersOutsideProduction(t *testing.T) {
	withConfig(t, "development", "pub-123")
	got := BuildSlots(policy(access.AccessFree))
	if !got.Enabled || got.PublisherID != "" || len(got.Slots) != 3 {
		t.Fatalf("unexpected response: %+v", got)
	}
	for _, s := range got.Slots {
		if !s.Placeholder || s.SlotID != "" {
			t.Fatalf("expected inert slot, got %+v", s)
		}
	}
}

func TestBuildSlots_Production(t *testing.T) {
	withConfig(t, "production", "pub-123")
	got := BuildSlots(policy(access.AccessAnonymous))
	if got.PublisherID != "pub-123" {
		t.Fatalf("expected publisher id, got %+v", got)
	}
	if got.Slots[0].Placeholder || got.Slots[0].SlotID != "1111" {
		t.Fatalf("expected live header slot, got %+v", got.Slots[0])
	}
}
