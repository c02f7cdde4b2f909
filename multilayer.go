package main

import (
	"math"
)

// 多層膜を構成する一層
type Layer struct {
	material     string  // 材料名
	thickness_nm float64 // 層厚, nm
}

// 層の機能区分
type LayerFunction int

const (
	// 反射層（Ag, Al）
	FunctionReflector LayerFunction = iota
	// 放射層（PDMS）
	FunctionEmitter
	// 誘電体層（SiO2, TiO2 等）
	FunctionDielectric
)

// 材料の光学・経済特性（文献値に基づく簡易モデル）
type MaterialProperty struct {
	solar_reflectivity  float64 // 太陽光帯域の反射率, -
	window_reflectivity float64 // 大気の窓帯域の反射率, -
	cost                float64 // 材料単価, $/(10 μm・m2)
}

var _material_properties = map[string]MaterialProperty{
	"Ag":   {solar_reflectivity: 0.96, window_reflectivity: 0.95, cost: 0.8},
	"Al":   {solar_reflectivity: 0.92, window_reflectivity: 0.90, cost: 0.3},
	"SiO2": {solar_reflectivity: 0.04, window_reflectivity: 0.10, cost: 0.1},
	"TiO2": {solar_reflectivity: 0.10, window_reflectivity: 0.15, cost: 0.4},
	"PDMS": {solar_reflectivity: 0.05, window_reflectivity: 0.10, cost: 0.25},
}

// 干渉効果の近似計算に用いる代表屈折率
var _layer_refractive_indices = map[string]float64{
	"SiO2": 1.45,
	"TiO2": 2.4,
	"PDMS": 1.4,
}

// 単層PDMSの基準冷却量, W/m2
const base_cooling_power = 101.1

// 層数ごとの性能増強係数（文献の多層構造データに基づく）
var _layer_enhancement = map[int]float64{
	1: 1.00,
	2: 1.15,
	3: 1.35,
	4: 1.45,
	5: 1.55,
}

// 多層膜構造の光学性能
type StructurePerformance struct {
	performance        float64 // 冷却性能, W/m2
	solar_reflectivity float64 // 太陽光帯域の反射率, -
	window_emissivity  float64 // 大気の窓帯域の放射率, -
	solar_absorptivity float64 // 太陽光帯域の吸収率, -
	selectivity        float64 // 選択性, -
}

// 層数解析の結果
type LayerAnalysisResult struct {
	num_layers         int                  // 層数
	structure          []Layer              // 構造
	performance        float64              // 冷却性能, W/m2
	cost               float64              // 構造コスト, $/m2
	cost_effectiveness float64              // 成本効率, W/$
	optical            StructurePerformance // 光学性能の内訳
}

/*
層の機能を判定する。

	Args:
		material: 材料名

	Returns:
		層の機能区分
*/
func get_layer_function(material string) LayerFunction {
	switch material {
	case "Ag", "Al":
		return FunctionReflector
	case "PDMS":
		return FunctionEmitter
	default:
		return FunctionDielectric
	}
}

/*
文献と工学的実績に基づく層数ごとの代表的な構造を返す。

	Args:
		num_layers: 層数（1～5）

	Returns:
		多層膜構造
*/
func get_typical_structure(num_layers int) []Layer {
	switch num_layers {
	case 1:
		return []Layer{{"PDMS", 11000.0}}
	case 2:
		return []Layer{{"Ag", 100.0}, {"PDMS", 11000.0}}
	case 3:
		return []Layer{{"Ag", 100.0}, {"SiO2", 250.0}, {"PDMS", 11000.0}}
	case 4:
		return []Layer{{"Ag", 100.0}, {"SiO2", 200.0}, {"TiO2", 150.0}, {"PDMS", 11000.0}}
	case 5:
		return []Layer{{"Ag", 100.0}, {"SiO2", 150.0}, {"TiO2", 100.0}, {"SiO2", 150.0}, {"PDMS", 8000.0}}
	default:
		panic("対応していない層数が指定されました")
	}
}

/*
多層膜構造の太陽光帯域の反射率を求める。

	Args:
		structure: 多層膜構造

	Returns:
		太陽光帯域の反射率, -

	Notes:
		反射層がある場合は金属層の反射率を基準とし、
		直上の誘電体層による反射増強を乗じる（上限 0.98）。
		反射層がない場合は 0.15 とする。
*/
func get_solar_reflectivity(structure []Layer) float64 {
	for i, layer := range structure {
		if get_layer_function(layer.material) != FunctionReflector {
			continue
		}
		base := _material_properties[layer.material].solar_reflectivity
		if i > 0 && get_layer_function(structure[i-1].material) == FunctionDielectric {
			base *= _get_dielectric_enhancement(structure[i-1])
		}
		return math.Min(0.98, base)
	}
	return 0.15
}

/*
誘電体層による反射増強係数を求める。

	Args:
		layer: 誘電体層

	Returns:
		反射増強係数, -

	Notes:
		1/4 波長条件に近い層厚で増強が大きくなる。
*/
func _get_dielectric_enhancement(layer Layer) float64 {
	switch layer.material {
	case "SiO2":
		if 200.0 <= layer.thickness_nm && layer.thickness_nm <= 300.0 {
			return 1.08
		}
		return 1.03
	case "TiO2":
		if 100.0 <= layer.thickness_nm && layer.thickness_nm <= 200.0 {
			return 1.12
		}
		return 1.05
	default:
		return 1.0
	}
}

/*
多層膜構造の大気の窓帯域の放射率を求める。

	Args:
		structure: 多層膜構造

	Returns:
		大気の窓帯域の放射率, -

	Notes:
		放射層（PDMS）の窓帯域反射率から基礎放射率を求め、
		層厚補正と干渉増強を乗じる（上限 0.95）。
		放射層が無い場合の基礎放射率は 0.1 とする。
*/
func get_window_emissivity_of_structure(structure []Layer) float64 {
	base_emissivity := 0.1

	for _, layer := range structure {
		if get_layer_function(layer.material) != FunctionEmitter {
			continue
		}
		base_emissivity = 1.0 - _material_properties[layer.material].window_reflectivity

		var thickness_factor float64
		switch {
		case 8000.0 <= layer.thickness_nm && layer.thickness_nm <= 12000.0:
			thickness_factor = 1.0
		case layer.thickness_nm < 8000.0:
			thickness_factor = layer.thickness_nm / 8000.0
		default:
			thickness_factor = 1.0 - (layer.thickness_nm-12000.0)/50000.0
		}

		base_emissivity *= thickness_factor
		break
	}

	return math.Min(0.95, base_emissivity*_get_interference_enhancement(structure))
}

/*
誘電体層による干渉増強係数を求める。

	Args:
		structure: 多層膜構造

	Returns:
		干渉増強係数 ∈ [1.0, 1.5], -

	Notes:
		誘電体層 1 層あたり 0.15 を加算し、光学厚さが 10 μm の
		1/4 波長条件（2.5 μm）の ±20% に入る層ごとに 0.1 を加算する。
*/
func _get_interference_enhancement(structure []Layer) float64 {
	enhancement := 1.0

	dielectric_layers := 0
	for _, layer := range structure {
		if layer.material == "SiO2" || layer.material == "TiO2" {
			dielectric_layers++
		}
	}

	if dielectric_layers > 0 {
		enhancement += 0.15 * float64(dielectric_layers)

		for _, layer := range structure {
			if layer.material != "SiO2" && layer.material != "TiO2" {
				continue
			}
			quarter_wave_ratio := _get_optical_thickness(layer) / 2.5
			if 0.8 <= quarter_wave_ratio && quarter_wave_ratio <= 1.2 {
				enhancement += 0.1
			}
		}
	}

	return math.Min(enhancement, 1.5)
}

/*
層の光学厚さを求める。

	Args:
		layer: 層

	Returns:
		光学厚さ, μm
*/
func _get_optical_thickness(layer Layer) float64 {
	n, ok := _layer_refractive_indices[layer.material]
	if !ok {
		n = 1.5
	}
	return n * layer.thickness_nm / 1000.0
}

/*
多層膜構造の冷却性能を見積もる。

	Args:
		structure: 多層膜構造

	Returns:
		冷却性能, W/m2

	Notes:
		単層PDMSの基準冷却量に層数ごとの増強係数を乗じる。
		対応表に無い層数の増強係数は 1.0 とする。
*/
func estimate_cooling_power(structure []Layer) float64 {
	enhancement, ok := _layer_enhancement[len(structure)]
	if !ok {
		enhancement = 1.0
	}
	return base_cooling_power * enhancement
}

/*
多層膜構造の光学性能と冷却性能をまとめて評価する。

	Args:
		structure: 多層膜構造

	Returns:
		構造性能の評価結果
*/
func get_structure_performance(structure []Layer) StructurePerformance {
	solar_reflectivity := get_solar_reflectivity(structure)
	window_emissivity := get_window_emissivity_of_structure(structure)

	solar_absorptivity := math.Max(0.01, 1.0-solar_reflectivity)

	return StructurePerformance{
		performance:        estimate_cooling_power(structure),
		solar_reflectivity: solar_reflectivity,
		window_emissivity:  window_emissivity,
		solar_absorptivity: solar_absorptivity,
		selectivity:        window_emissivity / math.Max(solar_absorptivity, 0.01),
	}
}

/*
多層膜構造の製造コストを求める。

	Args:
		structure: 多層膜構造

	Returns:
		構造コスト, $/m2

	Notes:
		材料コスト（単価 × 層厚/10000 nm）の合計に
		固定製造コスト（10 + 2 × 層数）を加える。
*/
func get_structure_cost(structure []Layer) float64 {
	total_cost := 0.0
	for _, layer := range structure {
		total_cost += _material_properties[layer.material].cost * layer.thickness_nm / 10000.0
	}
	return total_cost + 10.0 + 2.0*float64(len(structure))
}

/*
層数 1～max_layers の代表構造について性能・コスト・成本効率を解析する。

	Args:
		max_layers: 解析する最大層数

	Returns:
		層数ごとの解析結果の列
*/
func analyze_layer_impact(max_layers int) []LayerAnalysisResult {
	results := make([]LayerAnalysisResult, 0, max_layers)

	for num_layers := 1; num_layers <= max_layers; num_layers++ {
		structure := get_typical_structure(num_layers)

		optical := get_structure_performance(structure)
		cost := get_structure_cost(structure)

		results = append(results, LayerAnalysisResult{
			num_layers:         num_layers,
			structure:          structure,
			performance:        optical.performance,
			cost:               cost,
			cost_effectiveness: optical.performance / cost,
			optical:            optical,
		})
	}

	return results
}

/*
成本効率が最大となる構造を選ぶ。

	Args:
		results: 層数解析の結果の列

	Returns:
		成本効率が最大の解析結果

	Notes:
		同率の場合は先に現れた（層数の少ない）構造を選ぶ。
*/
func find_optimal_structure(results []LayerAnalysisResult) LayerAnalysisResult {
	if len(results) == 0 {
		panic("層数解析の結果が空です")
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.cost_effectiveness > best.cost_effectiveness {
			best = r
		}
	}
	return best
}
