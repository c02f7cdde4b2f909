package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_設計案一覧_3案を順序固定で返す(t *testing.T) {
	designs := get_optimal_designs()

	require.Len(t, designs, 3)
	assert.Equal(t, "single_layer", designs[0].key)
	assert.Equal(t, "multilayer_optimal", designs[1].key)
	assert.Equal(t, "multilayer_advanced", designs[2].key)

	// 層数が増えるほど性能は高い
	assert.Less(t, designs[0].performance, designs[1].performance)
	assert.Less(t, designs[1].performance, designs[2].performance)
}

func Test_設計案評価_PDMS層厚が環境評価に使われる(t *testing.T) {
	evaluator := new_test_evaluator(t)
	envs := get_environment_profiles()

	evaluation := evaluate_design(get_optimal_designs()[1], evaluator, envs)

	require.Len(t, evaluation.by_env, len(envs))

	// PDMS 11000 nm → 11 μm で評価した結果と一致する
	for i, env := range envs {
		expected := evaluator.get_net_cooling(11.0, env)
		assert.Equal(t, expected.p_net, evaluation.by_env[i].perf.p_net)
	}
}

func Test_設計案評価_技術リスクの計数(t *testing.T) {
	evaluator := new_test_evaluator(t)
	envs := get_environment_profiles()
	designs := get_optimal_designs()

	// 単層: リスクなし
	single := evaluate_design(designs[0], evaluator, envs)
	assert.Equal(t, 0, single.num_risks)

	// 3層: 100 nm の超薄層を含む
	three := evaluate_design(designs[1], evaluator, envs)
	assert.Equal(t, 0, three.num_risks)

	// 4層: 層数超過 + 超薄層は計数されない（100 nm は 50 nm 以上）
	four := evaluate_design(designs[2], evaluator, envs)
	assert.Equal(t, 1, four.num_risks)
}

func Test_経済性解析_恒等式(t *testing.T) {
	evaluator := new_test_evaluator(t)
	envs := get_environment_profiles()

	evaluation := evaluate_design(get_optimal_designs()[1], evaluator, envs)
	economics := analyze_economics(evaluation)

	annual_saving := get_annual_saving(evaluation.design.performance)
	assert.InDelta(t, annual_saving*10000.0, economics.annual_revenue, 1e-6)

	expected_profit := economics.annual_revenue - evaluation.cost.total_cost*10000.0
	assert.InDelta(t, expected_profit, economics.annual_profit, 1e-6)

	if economics.annual_profit > 0.0 {
		assert.InDelta(t, 800000.0/economics.annual_profit, economics.payback_period, 1e-9)
	} else {
		assert.True(t, math.IsInf(economics.payback_period, 1))
	}

	expected_npv := get_npv(economics.annual_profit, 5, 0.1) - 800000.0
	assert.InDelta(t, expected_npv, economics.npv_5years, 1e-6)
}

func Test_総合スコア_重みの合計は1(t *testing.T) {
	evaluator := new_test_evaluator(t)
	envs := get_environment_profiles()

	for _, design := range get_optimal_designs() {
		evaluation := evaluate_design(design, evaluator, envs)
		economics := analyze_economics(evaluation)
		score := get_comprehensive_score(evaluation, economics)

		// 各項は高々 1 で重み合計は 1 なのでスコアは (0, 1] 近傍に収まる
		assert.Greater(t, score, 0.0)
		assert.Less(t, score, 1.1)
	}
}

func Test_設計比較_最良案は全比較結果の最大スコア(t *testing.T) {
	evaluator := new_test_evaluator(t)
	envs := get_environment_profiles()

	best, comparisons := compare_designs(evaluator, envs)

	require.Len(t, comparisons, 3)
	for _, c := range comparisons {
		assert.LessOrEqual(t, c.comprehensive_score, best.comprehensive_score)
	}
}
