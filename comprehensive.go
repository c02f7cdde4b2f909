package main

import (
	"math"
)

// 総合最適化で比較する設計案
type DesignCandidate struct {
	key         string  // 設計案の識別子
	description string  // 設計案の説明
	structure   []Layer // 多層膜構造
	performance float64 // 冷却性能, W/m2
}

// 設計案ごとの環境適応性（環境条件と冷却性能の対応）
type EnvironmentPerformance struct {
	env  EnvironmentProfile
	perf CoolingPerformance
}

// 設計案の総合評価結果
type DesignEvaluation struct {
	design       DesignCandidate
	optical      StructurePerformance     // 光学性能
	cost         MultilayerCostResult     // コスト評価
	by_env       []EnvironmentPerformance // 環境条件ごとの冷却性能
	feasibility  bool                     // 技術的実現性（构成材料が全て入手容易か）
	num_risks    int                      // 技術リスクの件数
}

// 経済性解析の結果
type EconomicAnalysis struct {
	total_investment float64 // 総投資額, $
	annual_revenue   float64 // 年間収益, $
	annual_profit    float64 // 年間利益, $
	payback_period   float64 // 投資回収期間, 年
	roi_first_year   float64 // 初年度投資利益率, %
	npv_5years       float64 // 5年正味現在価値, $
}

// 設計案の総合スコア付き比較結果
type DesignComparison struct {
	evaluation          DesignEvaluation
	economics           EconomicAnalysis
	comprehensive_score float64 // 総合スコア, -
}

// 事業性評価の前提条件
const (
	total_capital_investment = 800000.0 // 総投資額（設備・施設・運転資金）, $
	production_capacity_m2   = 10000.0  // 年間生産能力, m2/年
	npv_discount_rate        = 0.1
	npv_years                = 5
)

/*
前段の解析結果に基づく最適設計案の一覧を返す。

	Returns:
		設計案の列（単層基準・三層最適・四層増強）
*/
func get_optimal_designs() []DesignCandidate {
	return []DesignCandidate{
		{
			key:         "single_layer",
			description: "単層PDMS基準設計",
			structure:   get_typical_structure(1),
			performance: 101.1,
		},
		{
			key:         "multilayer_optimal",
			description: "三層最適設計(Ag/SiO2/PDMS)",
			structure:   get_typical_structure(3),
			performance: 136.5,
		},
		{
			key:         "multilayer_advanced",
			description: "四層増強設計(Ag/SiO2/TiO2/PDMS)",
			structure:   get_typical_structure(4),
			performance: 146.6,
		},
	}
}

/*
設計案の光学性能・コスト・環境適応性・実現性をまとめて評価する。

	Args:
		design: 設計案
		evaluator: 冷却性能評価器
		envs: 環境条件の列

	Returns:
		設計案の総合評価結果

	Notes:
		環境適応性の評価には構造中の PDMS 層厚を μm に換算して用いる。
		PDMS 層が無い構造は代表値 11.0 μm を用いる。
		技術リスクは層数が 3 を超える場合と 50 nm 未満の超薄層を
		含む場合に 1 件ずつ数える。
*/
func evaluate_design(design DesignCandidate, evaluator *CoolingEvaluator, envs []EnvironmentProfile) DesignEvaluation {

	optical := get_structure_performance(design.structure)
	cost := get_multilayer_costs(design.structure, design.performance)

	pdms_thickness := 11.0
	for _, layer := range design.structure {
		if layer.material == "PDMS" {
			pdms_thickness = layer.thickness_nm / 1000.0
			break
		}
	}

	by_env := make([]EnvironmentPerformance, 0, len(envs))
	for _, env := range envs {
		by_env = append(by_env, EnvironmentPerformance{
			env:  env,
			perf: evaluator.get_net_cooling(pdms_thickness, env),
		})
	}

	num_risks := 0
	if len(design.structure) > 3 {
		num_risks++
	}
	for _, layer := range design.structure {
		if layer.thickness_nm < 50.0 {
			num_risks++
			break
		}
	}

	feasibility := true
	for _, layer := range design.structure {
		if _, ok := _material_properties[layer.material]; !ok {
			feasibility = false
			break
		}
	}

	return DesignEvaluation{
		design:      design,
		optical:     optical,
		cost:        cost,
		by_env:      by_env,
		feasibility: feasibility,
		num_risks:   num_risks,
	}
}

/*
設計案の事業性を解析する。

	Args:
		evaluation: 設計案の総合評価結果

	Returns:
		経済性解析の結果

	Notes:
		年間収益 = 単位面積あたり年間節約額 × 年間生産能力
		年間利益 = 年間収益 - 単位面積コスト × 年間生産能力
		年間利益が 0 以下の場合、投資回収期間は +Inf とする。
*/
func analyze_economics(evaluation DesignEvaluation) EconomicAnalysis {

	annual_saving_per_m2 := get_annual_saving(evaluation.design.performance)
	annual_revenue := annual_saving_per_m2 * production_capacity_m2
	annual_operating_cost := evaluation.cost.total_cost * production_capacity_m2
	annual_profit := annual_revenue - annual_operating_cost

	payback := math.Inf(1)
	if annual_profit > 0.0 {
		payback = total_capital_investment / annual_profit
	}

	return EconomicAnalysis{
		total_investment: total_capital_investment,
		annual_revenue:   annual_revenue,
		annual_profit:    annual_profit,
		payback_period:   payback,
		roi_first_year:   annual_profit / total_capital_investment * 100.0,
		npv_5years:       get_npv(annual_profit, npv_years, npv_discount_rate) - total_capital_investment,
	}
}

/*
設計案の総合スコアを求める。

	Args:
		evaluation: 設計案の総合評価結果
		economics: 経済性解析の結果

	Returns:
		総合スコア, -

	Notes:
		性能（基準 150 W/m2）25%・成本効率（基準 3 W/$）35%・
		実現性 20%・投資回収期間 20% の重み付き合計とする。
		経済性を重視した重み配分である。
*/
func get_comprehensive_score(evaluation DesignEvaluation, economics EconomicAnalysis) float64 {

	perf_score := evaluation.design.performance / 150.0

	cost_eff_score := math.Min(evaluation.cost.cost_effectiveness/3.0, 1.0)

	feasibility_score := 0.7
	if evaluation.feasibility {
		feasibility_score = 1.0
	}

	var payback_score float64
	switch {
	case economics.payback_period <= 3.0:
		payback_score = 1.0
	case economics.payback_period <= 5.0:
		payback_score = 0.7
	default:
		payback_score = 0.3
	}

	return perf_score*0.25 + cost_eff_score*0.35 + feasibility_score*0.2 + payback_score*0.2
}

/*
全設計案を比較し総合スコアの高い順の推薦を行う。

	Args:
		evaluator: 冷却性能評価器
		envs: 環境条件の列

	Returns:
		最良の設計案と全設計案の比較結果

	Notes:
		同率の場合は先に定義された設計案を優先する。
*/
func compare_designs(evaluator *CoolingEvaluator, envs []EnvironmentProfile) (DesignComparison, []DesignComparison) {

	designs := get_optimal_designs()
	comparisons := make([]DesignComparison, 0, len(designs))

	for _, design := range designs {
		evaluation := evaluate_design(design, evaluator, envs)
		economics := analyze_economics(evaluation)

		comparisons = append(comparisons, DesignComparison{
			evaluation:          evaluation,
			economics:           economics,
			comprehensive_score: get_comprehensive_score(evaluation, economics),
		})
	}

	best := comparisons[0]
	for _, c := range comparisons[1:] {
		if c.comprehensive_score > best.comprehensive_score {
			best = c
		}
	}

	return best, comparisons
}
