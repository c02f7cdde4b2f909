package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_多層膜_層数ごとの冷却性能(t *testing.T) {
	assert.InDelta(t, 101.1, estimate_cooling_power(get_typical_structure(1)), 1e-9)
	assert.InDelta(t, 101.1*1.15, estimate_cooling_power(get_typical_structure(2)), 1e-9)
	assert.InDelta(t, 101.1*1.35, estimate_cooling_power(get_typical_structure(3)), 1e-9)
	assert.InDelta(t, 101.1*1.45, estimate_cooling_power(get_typical_structure(4)), 1e-9)
	assert.InDelta(t, 101.1*1.55, estimate_cooling_power(get_typical_structure(5)), 1e-9)
}

func Test_多層膜_対応表に無い層数は増強なし(t *testing.T) {
	structure := make([]Layer, 6)
	for i := range structure {
		structure[i] = Layer{"SiO2", 100.0}
	}
	assert.InDelta(t, 101.1, estimate_cooling_power(structure), 1e-9)
}

func Test_太陽光反射率_反射層なしは一定値(t *testing.T) {
	assert.Equal(t, 0.15, get_solar_reflectivity(get_typical_structure(1)))
}

func Test_太陽光反射率_金属層が支配する(t *testing.T) {
	// Ag が最上層側にあり直上に誘電体層が無い場合は素の反射率
	assert.InDelta(t, 0.96, get_solar_reflectivity(get_typical_structure(3)), 1e-12)

	// 誘電体層の直下にある金属層は増強される
	structure := []Layer{{"SiO2", 250.0}, {"Ag", 100.0}, {"PDMS", 11000.0}}
	assert.InDelta(t, math.Min(0.98, 0.96*1.08), get_solar_reflectivity(structure), 1e-12)
}

func Test_窓放射率_最適膜厚のPDMSと干渉増強(t *testing.T) {
	// 3層構造: PDMS 11000 nm は最適範囲、誘電体1層で増強 1.15
	// 0.9 × 1.15 = 1.035 → 上限 0.95
	assert.Equal(t, 0.95, get_window_emissivity_of_structure(get_typical_structure(3)))
}

func Test_窓放射率_薄いPDMSは層厚比例(t *testing.T) {
	structure := []Layer{{"Ag", 100.0}, {"PDMS", 4000.0}}
	assert.InDelta(t, 0.9*0.5, get_window_emissivity_of_structure(structure), 1e-12)
}

func Test_窓放射率_放射層なしは低放射率(t *testing.T) {
	structure := []Layer{{"Ag", 100.0}, {"SiO2", 250.0}}
	// 基礎放射率 0.1 × 増強 1.15
	assert.InDelta(t, 0.1*1.15, get_window_emissivity_of_structure(structure), 1e-12)
}

func Test_干渉増強_四分の一波長条件の加算と上限(t *testing.T) {
	// TiO2 1000 nm: 光学厚さ 2.4 μm、2.5 μm の ±20% に入る
	with_quarter_wave := []Layer{{"TiO2", 1000.0}, {"PDMS", 11000.0}}
	assert.InDelta(t, 1.0+0.15+0.1, _get_interference_enhancement(with_quarter_wave), 1e-12)

	// 誘電体4層（うち四分の一波長2層）では上限 1.5 にクリップされる
	many := []Layer{
		{"TiO2", 1000.0}, {"TiO2", 1000.0}, {"SiO2", 100.0}, {"SiO2", 100.0},
		{"PDMS", 11000.0},
	}
	assert.Equal(t, 1.5, _get_interference_enhancement(many))
}

func Test_構造コスト_固定費と材料費(t *testing.T) {
	// 単層PDMS: 0.25 × 11000/10000 + (10 + 2)
	assert.InDelta(t, 0.275+12.0, get_structure_cost(get_typical_structure(1)), 1e-9)

	// 3層: Ag 0.008 + SiO2 0.0025 + PDMS 0.275 + (10 + 6)
	assert.InDelta(t, 0.008+0.0025+0.275+16.0, get_structure_cost(get_typical_structure(3)), 1e-9)
}

func Test_層数解析_全層数の結果と最適構造(t *testing.T) {
	results := analyze_layer_impact(5)
	assert.Len(t, results, 5)

	for i, r := range results {
		assert.Equal(t, i+1, r.num_layers)
		assert.InDelta(t, r.performance/r.cost, r.cost_effectiveness, 1e-12)
	}

	best := find_optimal_structure(results)
	for _, r := range results {
		assert.LessOrEqual(t, r.cost_effectiveness, best.cost_effectiveness)
	}
}

func Test_層数解析_対応外の層数でパニック(t *testing.T) {
	assert.Panics(t, func() { get_typical_structure(0) })
	assert.Panics(t, func() { get_typical_structure(6) })
	assert.Panics(t, func() { find_optimal_structure(nil) })
}
