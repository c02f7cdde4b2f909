package main

import (
	"math"
)

// 単層PDMS膜のコストパラメータ, $/m2（材料単価のみ $/(μm・m2)）
const (
	pdms_material_cost_per_um = 0.25 // PDMS材料単価, $/(μm・m2)
	fabrication_cost          = 12.0 // 製造工程コスト, $/m2
	substrate_cost            = 8.0  // 基板コスト, $/m2
	installation_cost         = 5.0  // 施工コスト, $/m2
)

// 多層膜のコストパラメータ
const (
	multilayer_base_fabrication    = 15.0 // 基礎製造コスト, $/m2
	multilayer_complexity_ratio    = 1.3  // 層数ごとの製造コスト増加率, -
	multilayer_substrate_cost      = 10.0 // 基板コスト, $/m2
	multilayer_installation_cost   = 8.0  // 施工コスト, $/m2
	daily_operation_hours          = 10.0 // 日積算運転時間, h
	annual_operation_days          = 365.0
	electricity_price_per_kwh      = 0.15 // 電力単価, $/kWh
)

// 多層膜の材料単価, $/(μm・m2)
var _multilayer_unit_costs = map[string]float64{
	"Ag":   8.0,
	"Al":   2.5,
	"SiO2": 1.2,
	"TiO2": 3.0,
	"PDMS": 0.8,
}

// 単層膜のコスト評価結果
type CostResult struct {
	material_cost      float64 // 材料コスト, $/m2
	total_cost         float64 // 総コスト, $/m2
	cost_per_watt      float64 // 単位冷却量あたりコスト, $/W
	cost_effectiveness float64 // 成本効率, W/$
}

// 層ごとの材料コスト
type LayerCost struct {
	material     string  // 材料名
	thickness_nm float64 // 層厚, nm
	cost         float64 // 層コスト, $/m2
}

// 多層膜のコスト評価結果
type MultilayerCostResult struct {
	total_cost         float64     // 総コスト, $/m2
	material_cost      float64     // 材料コスト, $/m2
	fabrication_cost   float64     // 製造コスト, $/m2
	substrate_cost     float64     // 基板コスト, $/m2
	installation_cost  float64     // 施工コスト, $/m2
	cost_per_watt      float64     // 単位冷却量あたりコスト, $/W
	cost_effectiveness float64     // 成本効率, W/$
	layer_costs        []LayerCost // 層ごとの材料コスト
}

/*
単層PDMS膜のコスト指標を求める。

	Args:
		thickness: 膜厚, μm
		cooling_power: 冷却性能, W/m2

	Returns:
		コスト評価結果

	Notes:
		冷却性能が 0 以下の場合、単位冷却量あたりコストは +Inf、
		成本効率は 0 とする。
*/
func get_costs(thickness float64, cooling_power float64) CostResult {
	material_cost := thickness * pdms_material_cost_per_um
	total_cost := material_cost + fabrication_cost + substrate_cost + installation_cost

	cost_per_watt := math.Inf(1)
	cost_effectiveness := 0.0
	if cooling_power > 0.0 {
		cost_per_watt = total_cost / cooling_power
		cost_effectiveness = cooling_power / total_cost
	}

	return CostResult{
		material_cost:      material_cost,
		total_cost:         total_cost,
		cost_per_watt:      cost_per_watt,
		cost_effectiveness: cost_effectiveness,
	}
}

/*
多層膜構造のコスト指標を求める。

	Args:
		structure: 多層膜構造
		cooling_power: 冷却性能, W/m2

	Returns:
		多層膜のコスト評価結果

	Notes:
		製造コストは層数に対して指数的に増加する
		（基礎コスト × 1.3^(層数-1)）。
		対応表に無い材料の単価は 1.0 $/(μm・m2) とする。
*/
func get_multilayer_costs(structure []Layer, cooling_power float64) MultilayerCostResult {
	material_cost := 0.0
	layer_costs := make([]LayerCost, 0, len(structure))

	for _, layer := range structure {
		thickness_um := layer.thickness_nm / 1000.0
		unit_cost, ok := _multilayer_unit_costs[layer.material]
		if !ok {
			unit_cost = 1.0
		}
		layer_cost := unit_cost * thickness_um
		material_cost += layer_cost
		layer_costs = append(layer_costs, LayerCost{
			material:     layer.material,
			thickness_nm: layer.thickness_nm,
			cost:         layer_cost,
		})
	}

	fabrication := multilayer_base_fabrication *
		math.Pow(multilayer_complexity_ratio, float64(len(structure)-1))

	total_cost := material_cost + fabrication + multilayer_substrate_cost + multilayer_installation_cost

	cost_per_watt := math.Inf(1)
	cost_effectiveness := 0.0
	if cooling_power > 0.0 {
		cost_per_watt = total_cost / cooling_power
		cost_effectiveness = cooling_power / total_cost
	}

	return MultilayerCostResult{
		total_cost:         total_cost,
		material_cost:      material_cost,
		fabrication_cost:   fabrication,
		substrate_cost:     multilayer_substrate_cost,
		installation_cost:  multilayer_installation_cost,
		cost_per_watt:      cost_per_watt,
		cost_effectiveness: cost_effectiveness,
		layer_costs:        layer_costs,
	}
}

/*
冷却性能から年間の節約電力費を求める。

	Args:
		cooling_power: 冷却性能, W/m2

	Returns:
		年間節約額, $/(m2・年)

	Notes:
		1日 10 時間・年 365 日の運転を仮定する。
*/
func get_annual_saving(cooling_power float64) float64 {
	daily_energy := cooling_power * daily_operation_hours / 1000.0
	return daily_energy * annual_operation_days * electricity_price_per_kwh
}

/*
投資回収期間を求める。

	Args:
		investment: 投資額, $
		annual_saving: 年間節約額, $/年

	Returns:
		投資回収期間, 年（年間節約額が 0 以下の場合は +Inf）
*/
func get_payback_period(investment float64, annual_saving float64) float64 {
	if annual_saving <= 0.0 {
		return math.Inf(1)
	}
	return investment / annual_saving
}

/*
一定のキャッシュフローに対する正味現在価値を求める。

	Args:
		annual_cashflow: 年間キャッシュフロー, $
		years: 期間, 年
		discount_rate: 割引率, -

	Returns:
		正味現在価値（初期投資は含まない）, $
*/
func get_npv(annual_cashflow float64, years int, discount_rate float64) float64 {
	npv := 0.0
	for year := 1; year <= years; year++ {
		npv += annual_cashflow / math.Pow(1.0+discount_rate, float64(year))
	}
	return npv
}
