package supportstore_test

import (
	"testing"

	supportstore "github.com/towdeskhq/towdesk/internal/app/store/support"
	"github.com/towdeskhq/towdesk/internal/testutil"
)

func TestThreads_GroupsBySender(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateSupportMessage(ctx, "rider@example.com", "my car is still stuck", false)
	fixtures.CreateSupportMessage(ctx, "rider@example.com", "hello?", false)
	fixtures.CreateSupportMessage(ctx, "driver@example.com", "payout question", false)

	store := supportstore.New(db)
	threads, err := store.Threads(ctx)
	if err != nil {
		t.Fatalf("Threads: %v", err)
	}

	if len(threads) != 2 {
		t.Fatalf("got %d threads, want 2", len(threads))
	}
	for _, th := range threads {
		if !th.Unreplied {
			t.Errorf("thread %s: want unreplied", th.Sender)
		}
	}
}

func TestReply_MarksThreadReplied(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateSupportMessage(ctx, "rider@example.com", "need help", false)

	store := supportstore.New(db)
	if _, err := store.Reply(ctx, "Rider@Example.com", "Ops Admin", "on it"); err != nil {
		t.Fatalf("Reply: %v", err)
	}

	msgs, err := store.Conversation(ctx, "rider@example.com")
	if err != nil {
		t.Fatalf("Conversation: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if !msgs[1].FromAdmin || msgs[1].AdminName != "Ops Admin" {
		t.Errorf("reply not recorded as admin message: %+v", msgs[1])
	}

	threads, err := store.Threads(ctx)
	if err != nil {
		t.Fatalf("Threads: %v", err)
	}
	if len(threads) != 1 {
		t.Fatalf("got %d threads, want 1", len(threads))
	}
	if threads[0].Unreplied {
		t.Errorf("thread should be replied after admin message")
	}

	n, err := store.CountUnreplied(ctx)
	if err != nil {
		t.Fatalf("CountUnreplied: %v", err)
	}
	if n != 0 {
		t.Errorf("CountUnreplied = %d, want 0", n)
	}
}
