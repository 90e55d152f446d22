package transition

import (
	"testing"

	"pig-dice/render"
)

func TestLifecycle(t *testing.T) {
	for _, kind := range []Kind{KindFade, KindVerticalSplit} {
		t.Run(kind.String(), func(t *testing.T) {
			e := New(kind, 800, 600)
			if e.Kind() != kind {
				t.Fatalf("expected kind %v, got %v", kind, e.Kind())
			}
			if e.Running() || e.Done() {
				t.Fatal("effect must start idle")
			}
			e.Update()
			if e.Running() || e.Done() || e.Progress() != 0 {
				t.Fatal("update before start must do nothing")
			}

			for round := 0; round < 2; round++ {
				e.Start()
				if !e.Running() || e.Done() || e.Progress() != 0 {
					t.Fatalf("round %d: start must reset to running", round)
				}

				ticks := 0
				for e.Running() {
					if e.Done() {
						t.Fatal("running and done at once")
					}
					e.Update()
					ticks++
					if ticks > 1000 {
						t.Fatal("effect never finished")
					}
				}
				if !e.Done() || e.Progress() != 1 {
					t.Fatalf("round %d: expected done with full progress", round)
				}
				if ticks < 2 {
					t.Fatalf("effect finished in %d ticks", ticks)
				}

				e.Update()
				if !e.Done() || e.Running() {
					t.Fatal("done must persist until the next start")
				}
			}
		})
	}
}

func TestDoneOnlyAfterFullDuration(t *testing.T) {
	f := NewFade(10, 10, 5)
	f.Start()
	for i := 0; i < 4; i++ {
		f.Update()
		if f.Done() {
			t.Fatalf("done after %d of 5 ticks", i+1)
		}
	}
	f.Update()
	if !f.Done() {
		t.Fatal("expected done after 5 ticks")
	}
}

func TestFadeDraw(t *testing.T) {
	f := NewFade(800, 600, 4)
	rec := render.NewRecorder(800, 600)
	f.Draw(rec)
	if len(rec.Ops) != 0 {
		t.Fatal("idle fade must not draw")
	}

	f.Start()
	f.Update()
	f.Update()
	if f.Alpha() != 127 {
		t.Fatalf("expected half alpha, got %d", f.Alpha())
	}
	f.Draw(rec)
	if rec.Count("rect") != 1 || rec.Ops[0].W != 800 || rec.Ops[0].H != 600 {
		t.Fatalf("expected a full-screen rect, got %+v", rec.Ops)
	}
}

func TestVerticalSplitDraw(t *testing.T) {
	v := NewVerticalSplit(800, 600, 2)
	v.Start()
	v.Update()
	if v.PanelWidth() != 200 {
		t.Fatalf("expected panels of 200, got %v", v.PanelWidth())
	}
	v.Update()
	rec := render.NewRecorder(800, 600)
	v.Draw(rec)
	if rec.Count("rect") != 2 {
		t.Fatalf("expected two panels, got %d", rec.Count("rect"))
	}
	if rec.Ops[0].W != 400 || rec.Ops[1].X != 400 {
		t.Fatalf("panels should meet in the middle: %+v", rec.Ops)
	}
}
