package intro

import (
	"math"
	"testing"
)

func uniformDurations(d float64) [PhaseCount]float64 {
	var durations [PhaseCount]float64
	for i := range durations {
		durations[i] = d
	}
	return durations
}

// TestPhaseOrder 测试阶段顺序和名称
func TestPhaseOrder(t *testing.T) {
	expected := []string{"initialHold", "reveal", "interStagePause", "revealSecondary", "finalHold"}
	phases := Phases()
	if len(phases) != PhaseCount {
		t.Fatalf("阶段数量: 期望 %d，实际 %d", PhaseCount, len(phases))
	}

	for i, p := range phases {
		if p.String() != expected[i] {
			t.Errorf("阶段 %d 名称: 期望 %s，实际 %s", i, expected[i], p.String())
		}
		next, ok := p.Next()
		if p.IsTerminal() {
			if ok {
				t.Errorf("%s 不应有下一个阶段", p)
			}
			continue
		}
		if !ok || next != phases[i+1] {
			t.Errorf("%s.Next() = %s, 期望 %s", p, next, phases[i+1])
		}
	}

	if Phase(42).String() != "unknown" {
		t.Errorf("越界阶段名称应为 unknown")
	}
}

// TestPhaseClock_Advance 测试时间累加和阶段切换
func TestPhaseClock_Advance(t *testing.T) {
	clock := NewPhaseClock(uniformDurations(1.0))

	if clock.Phase() != InitialHold || clock.Elapsed() != 0 {
		t.Fatalf("初始状态应为 InitialHold/0，实际 %s/%v", clock.Phase(), clock.Elapsed())
	}

	if _, ok := clock.Advance(0.5); ok {
		t.Fatal("0.5 秒后不应切换阶段")
	}
	if clock.Elapsed() != 0.5 {
		t.Errorf("elapsed: 期望 0.5，实际 %v", clock.Elapsed())
	}

	tr, ok := clock.Advance(0.6)
	if !ok {
		t.Fatal("1.1 秒后应切换阶段")
	}
	if tr.From != InitialHold || tr.To != Reveal || tr.Complete {
		t.Errorf("切换事件错误: %+v", tr)
	}
	if clock.Elapsed() != 0 {
		t.Errorf("切换后 elapsed 应归零，实际 %v", clock.Elapsed())
	}
}

// TestPhaseClock_NegativeDelta 测试负增量被限制为 0
func TestPhaseClock_NegativeDelta(t *testing.T) {
	clock := NewPhaseClock(uniformDurations(1.0))
	clock.Advance(0.4)

	tests := []struct {
		name  string
		delta float64
	}{
		{"负数", -5.0},
		{"负无穷", math.Inf(-1)},
		{"NaN", math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := clock.Advance(tt.delta); ok {
				t.Errorf("Advance(%v) 不应切换阶段", tt.delta)
			}
			if clock.Elapsed() != 0.4 {
				t.Errorf("Advance(%v) 后 elapsed 应保持 0.4，实际 %v", tt.delta, clock.Elapsed())
			}
		})
	}
}

// TestPhaseClock_ZeroDuration 测试时长为 0 的阶段在下一次求值时立即切换
func TestPhaseClock_ZeroDuration(t *testing.T) {
	clock := NewPhaseClock(uniformDurations(0))

	for _, want := range Phases()[1:] {
		tr, ok := clock.Advance(0)
		if !ok || tr.To != want {
			t.Fatalf("期望切换到 %s，实际 %+v (ok=%v)", want, tr, ok)
		}
	}

	tr, ok := clock.Advance(0)
	if !ok || !tr.Complete {
		t.Fatalf("最后阶段应报告完成，实际 %+v", tr)
	}
}

// TestPhaseClock_CompletedIsIdempotent 测试完成后调用只重复报告完成
func TestPhaseClock_CompletedIsIdempotent(t *testing.T) {
	clock := NewPhaseClock(uniformDurations(0.1))
	for i := 0; i < PhaseCount; i++ {
		clock.Advance(0.1)
	}
	if !clock.Completed() {
		t.Fatal("时钟应已完成")
	}
	elapsed := clock.Elapsed()

	for i := 0; i < 10; i++ {
		tr, ok := clock.Advance(1.0)
		if !ok || !tr.Complete || tr.From != FinalHold || tr.To != FinalHold {
			t.Fatalf("完成后应重复报告完成，实际 %+v", tr)
		}
	}
	if clock.Phase() != FinalHold {
		t.Errorf("完成后应停留在 FinalHold，实际 %s", clock.Phase())
	}
	if clock.Elapsed() != elapsed {
		t.Errorf("完成后 elapsed 不应再累加: %v → %v", elapsed, clock.Elapsed())
	}
}

// TestPhaseClock_NegativeDurationClamped 测试负时长按 0 处理
func TestPhaseClock_NegativeDurationClamped(t *testing.T) {
	clock := NewPhaseClock([PhaseCount]float64{-1, 1, 1, 1, 1})
	if clock.Duration(InitialHold) != 0 {
		t.Errorf("负时长应按 0 处理，实际 %v", clock.Duration(InitialHold))
	}
	if tr, ok := clock.Advance(0); !ok || tr.To != Reveal {
		t.Errorf("时长为 0 的阶段应立即切换，实际 %+v", tr)
	}
}
