package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func new_test_evaluator(t *testing.T) *CoolingEvaluator {
	t.Helper()
	model, err := NewCalibratedFilmModel(SubstrateSilicon, CorrectionHybrid)
	require.NoError(t, err)
	evaluator, err := NewCoolingEvaluator(model)
	require.NoError(t, err)
	return evaluator
}

func Test_冷却性能_基準条件でアンカー値を再現(t *testing.T) {
	evaluator := new_test_evaluator(t)
	reference := NewEnvironmentProfile(300.0, 275.0, 800.0, 1.0, "reference")

	// 膜厚 10 μm・基準条件: 環境調整係数 1.0、文献アンカーの 93 W/m2
	perf := evaluator.get_net_cooling(10.0, reference)
	assert.InDelta(t, 1.0, perf.env_adjustment, 1e-12)
	assert.InDelta(t, 93.0, perf.p_net, 1e-9)
	assert.InDelta(t, 8.2, perf.delta_t, 1e-9)
	assert.InDelta(t, 300.0-8.2, perf.t_surface, 1e-9)
}

func Test_冷却性能_アンカー間は線形補間(t *testing.T) {
	evaluator := new_test_evaluator(t)
	reference := NewEnvironmentProfile(300.0, 275.0, 800.0, 1.0, "reference")

	// 膜厚 7.5 μm: (78 + 93) / 2
	perf := evaluator.get_net_cooling(7.5, reference)
	assert.InDelta(t, 85.5, perf.p_net, 1e-9)
}

func Test_冷却性能_アンカー範囲外は端点で一定(t *testing.T) {
	evaluator := new_test_evaluator(t)
	reference := NewEnvironmentProfile(300.0, 275.0, 800.0, 1.0, "reference")

	below := evaluator.get_net_cooling(0.5, reference)
	assert.InDelta(t, 45.0, below.p_net, 1e-9)

	above := evaluator.get_net_cooling(100.0, reference)
	assert.InDelta(t, 65.0, above.p_net, 1e-9)
}

func Test_冷却性能_エネルギー収支の内訳(t *testing.T) {
	evaluator := new_test_evaluator(t)

	for _, env := range get_environment_profiles() {
		perf := evaluator.get_net_cooling(10.0, env)

		// 内訳の恒等式と非負制約
		assert.InDelta(t, 0.4*perf.p_rad, perf.p_atm, 1e-9)
		assert.GreaterOrEqual(t, perf.p_conv, 0.0)
		assert.GreaterOrEqual(t, perf.p_net, 0.0)
		assert.GreaterOrEqual(t, perf.delta_t, 0.0)

		// 放射パワーから吸収・対流を引くと正味冷却量に戻る
		residual := perf.p_rad - perf.p_atm - perf.p_sun - perf.p_conv
		if perf.p_conv > 0.0 {
			assert.InDelta(t, perf.p_net, residual, 1e-9)
		}
	}
}

func Test_冷却性能_選択性の分母下限(t *testing.T) {
	evaluator := new_test_evaluator(t)
	reference := NewEnvironmentProfile(300.0, 275.0, 800.0, 1.0, "reference")

	perf := evaluator.get_net_cooling(10.0, reference)

	assert.False(t, math.IsInf(perf.selectivity, 1))
	assert.InDelta(t,
		perf.window_emissivity/math.Max(perf.solar_absorptivity, 0.01),
		perf.selectivity, 1e-12)
}

func Test_冷却性能解析_点数と平均値(t *testing.T) {
	evaluator := new_test_evaluator(t)
	envs := get_environment_profiles()

	results := evaluator.performance_analysis(1.0, 50.0, 20, envs)

	assert.Len(t, results, 20)
	assert.InDelta(t, 1.0, results[0].thickness, 1e-12)
	assert.InDelta(t, 50.0, results[len(results)-1].thickness, 1e-9)

	for _, r := range results {
		assert.Len(t, r.by_environment, len(envs))

		sum := 0.0
		for _, e := range r.by_environment {
			sum += e.p_net
		}
		assert.InDelta(t, sum/float64(len(envs)), r.avg_p_net, 1e-9)
	}
}

func Test_冷却性能解析_不正な範囲でパニック(t *testing.T) {
	evaluator := new_test_evaluator(t)
	envs := get_environment_profiles()

	assert.Panics(t, func() { evaluator.performance_analysis(0.0, 50.0, 20, envs) })
	assert.Panics(t, func() { evaluator.performance_analysis(50.0, 1.0, 20, envs) })
	assert.Panics(t, func() { evaluator.performance_analysis(1.0, 50.0, 1, envs) })
}
