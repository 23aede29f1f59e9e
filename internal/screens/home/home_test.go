package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/catalog"
	"github.com/abhisek/mathdrill/internal/router"
	sessionscreen "github.com/abhisek/mathdrill/internal/screens/session"
	"github.com/abhisek/mathdrill/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testEnv(t *testing.T) (sessionscreen.Env, *store.MemoryKV) {
	t.Helper()
	kv := store.NewMemoryKV()
	return sessionscreen.Env{
		Catalog: catalog.Builtin(),
		Scores:  store.NewBestScores(kv, nil),
	}, kv
}

func TestHome_ListsFamilies(t *testing.T) {
	env, _ := testEnv(t)
	h := New(env)

	want := len(catalog.Families()) + 1 // + exit
	if len(h.menuLabels) != want {
		t.Fatalf("menu has %d items, want %d", len(h.menuLabels), want)
	}
	if h.menuLabels[0] != "MULTIPLICATION" {
		t.Errorf("first item = %q", h.menuLabels[0])
	}
	if h.menuLabels[len(h.menuLabels)-1] != "EXIT" {
		t.Errorf("last item = %q", h.menuLabels[len(h.menuLabels)-1])
	}
}

func TestHome_SelectPushesVariants(t *testing.T) {
	env, _ := testEnv(t)
	h := New(env)

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	v, ok := msg.Screen.(*VariantScreen)
	if !ok {
		t.Fatalf("pushed %T, want *VariantScreen", msg.Screen)
	}
	if v.family.ID != "multiplication" {
		t.Errorf("family = %q", v.family.ID)
	}
}

func TestHome_StatsCountBests(t *testing.T) {
	env, kv := testEnv(t)
	ctx := context.Background()
	kv.Set(ctx, "best_multiplication", "3.2")
	kv.Set(ctx, "rebus_best", "7")

	h := New(env)
	h.Update(h.Init()())

	if h.stats.bests != 2 {
		t.Errorf("bests = %d, want 2", h.stats.bests)
	}
	if mascotFor(h.stats) != MascotCelebrating {
		t.Error("expected celebrating mascot")
	}
	if view := h.View(100, 60); !strings.Contains(view, "2 BESTS") {
		t.Errorf("view missing stats bar")
	}
}

func TestHome_CompactView(t *testing.T) {
	env, _ := testEnv(t)
	h := New(env)
	view := h.View(80, 18)
	if !strings.Contains(view, arcadeTitleCompact) {
		t.Error("expected compact title")
	}
}

func TestVariants_ShowBest(t *testing.T) {
	env, kv := testEnv(t)
	kv.Set(context.Background(), "best_division", "4.5")
	fam := catalog.Family{ID: "division", Name: "Division"}

	v := NewVariants(env, fam)
	if len(v.menu.Items) != len(catalog.Builtin().ByFamily("division")) {
		t.Fatalf("got %d items", len(v.menu.Items))
	}
	if v.menu.Items[0].Detail != "★ 4.50s" {
		t.Errorf("Detail = %q", v.menu.Items[0].Detail)
	}
}

func TestVariants_ResumeRefreshesBest(t *testing.T) {
	env, kv := testEnv(t)
	v := NewVariants(env, catalog.Family{ID: "rebus", Name: "Rebus"})
	if v.menu.Items[0].Detail != "" {
		t.Fatalf("unexpected detail %q", v.menu.Items[0].Detail)
	}

	kv.Set(context.Background(), "rebus_best", "5")
	v.Resume()
	if v.menu.Items[0].Detail != "★ 5" {
		t.Errorf("Detail = %q", v.menu.Items[0].Detail)
	}
}

func TestVariants_EnterStartsDrill(t *testing.T) {
	env, _ := testEnv(t)
	v := NewVariants(env, catalog.Family{ID: "division", Name: "Division"})
	v.Update(keyPress('2'))

	_, cmd := v.Update(specialKey(tea.KeyEnter))
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	d, ok := msg.Screen.(*sessionscreen.DrillScreen)
	if !ok {
		t.Fatalf("pushed %T", msg.Screen)
	}
	if d.Title() != "Division · "+catalog.Builtin().ByFamily("division")[1].Name {
		t.Errorf("Title = %q", d.Title())
	}
}
