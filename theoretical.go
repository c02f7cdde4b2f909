package main

import (
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/optimize"
)

// 理論探索における光学定数の探索範囲（物理的に実現可能な範囲）
var _theoretical_bounds = [6][2]float64{
	{0.05, 0.5},   // 反射層の屈折率 n
	{3.0, 12.0},   // 反射層の消衰係数 k
	{1.4, 2.2},    // 誘電体層の屈折率 n
	{1e-6, 1e-3},  // 誘電体層の消衰係数 k
	{1.8, 3.5},    // 放射層の屈折率 n
	{0.01, 0.2},   // 放射層の消衰係数 k
}

// 実在材料の光学定数データベース
type MaterialOpticalData struct {
	n float64 // 屈折率, -
	k float64 // 消衰係数, -
}

var _material_database = map[string]MaterialOpticalData{
	"Ag":    {n: 0.05, k: 8.0},
	"Al":    {n: 1.5, k: 6.0},
	"Au":    {n: 0.20, k: 7.0},
	"SiO2":  {n: 1.45, k: 0.001},
	"TiO2":  {n: 2.4, k: 0.005},
	"Al2O3": {n: 1.76, k: 0.001},
	"PDMS":  {n: 1.4, k: 0.16},
	"PMMA":  {n: 1.49, k: 0.02},
	"SiC":   {n: 2.6, k: 0.2},
}

// 材料組合せの性能加成係数（文献に基づく）
var (
	_reflector_factors  = map[string]float64{"Ag": 1.10, "Au": 1.08, "Al": 1.05}
	_dielectric_factors = map[string]float64{"SiO2": 1.08, "Al2O3": 1.12, "TiO2": 1.15}
	_emitter_factors    = map[string]float64{"PDMS": 1.00, "PMMA": 0.95, "SiC": 1.20}
)

// 役割ごとの候補材料（組合せ評価の走査順を固定するため slice で保持する）
var (
	_reflector_candidates  = []string{"Ag", "Al", "Au"}
	_dielectric_candidates = []string{"SiO2", "TiO2", "Al2O3"}
	_emitter_candidates    = []string{"PDMS", "PMMA", "SiC"}
)

// 材料組合せの候補
type MaterialCombination struct {
	reflector             string  // 反射層の材料
	dielectric            string  // 誘電体層の材料
	emitter               string  // 放射層の材料
	match_score           float64 // 理想光学定数との乖離度（小さいほど良い）, -
	estimated_performance float64 // 予想冷却性能, W/m2
}

// 理論探索の結果
type TheoreticalExplorationResult struct {
	ideal_params      [6]float64            // 理想光学定数
	max_cooling_power float64               // 理論最大冷却性能, W/m2
	best_combination  MaterialCombination   // 最適な材料組合せ
	candidates        []MaterialCombination // 全候補（乖離度の昇順）
}

/*
反射層の太陽光帯域反射率を理論式から求める。

	Args:
		n_ref: 反射層の屈折率, -
		k_ref: 反射層の消衰係数, -
		n_diel: 誘電体層の屈折率, -

	Returns:
		太陽光帯域の反射率 ∈ [0.1, 0.98], -

	Notes:
		k > 0 の金属は垂直入射の反射率式
			R = 1 - 4n / ((n+1)^2 + k^2)
		を用い、k = 0 の誘電体はフレネル式 ((n-1)/(n+1))^2 を用いる。
		n_diel > 1.4 の誘電体層がある場合は反射防止効果で減衰させる。
*/
func _solar_reflectivity_theoretical(n_ref float64, k_ref float64, n_diel float64) float64 {
	var reflectivity float64
	if k_ref > 0.0 {
		reflectivity = 1.0 - 4.0*n_ref/((n_ref+1.0)*(n_ref+1.0)+k_ref*k_ref)
	} else {
		reflectivity = (n_ref - 1.0) * (n_ref - 1.0) / ((n_ref + 1.0) * (n_ref + 1.0))
	}

	if n_diel > 1.4 && k_ref > 0.0 {
		optimal_condition := math.Abs(n_diel-math.Sqrt(n_ref)) / math.Sqrt(n_ref)
		reflectivity *= 1.0 - 0.1*optimal_condition
	}

	return math.Min(0.98, math.Max(0.1, reflectivity))
}

/*
放射層の大気の窓帯域放射率を理論式から求める。

	Args:
		n_emit: 放射層の屈折率, -
		k_emit: 放射層の消衰係数, -
		n_diel: 誘電体層の屈折率, -

	Returns:
		大気の窓帯域の放射率 ∈ [0.1, 0.98], -

	Notes:
		波長 10 μm・膜厚 10 μm を代表値とし、
		吸収係数 α = 4πk/10 から 1 - exp(-α・10) を基礎放射率とする。
		α ≦ 0.1 の弱吸収材料の基礎放射率は 0.3 とする。
*/
func _window_emissivity_theoretical(n_emit float64, k_emit float64, n_diel float64) float64 {
	alpha := 4.0 * math.Pi * k_emit / 10.0

	var base_emissivity float64
	if alpha > 0.1 {
		base_emissivity = 1.0 - math.Exp(-alpha*10.0)
	} else {
		base_emissivity = 0.3
	}

	enhanced := base_emissivity * _interference_enhancement_theoretical(n_diel)

	return math.Min(0.98, math.Max(0.1, enhanced))
}

/*
誘電体層の屈折率による干渉増強係数を理論的に求める。

	Args:
		n_diel: 誘電体層の屈折率, -

	Returns:
		干渉増強係数 ∈ [1.0, 1.5], -
*/
func _interference_enhancement_theoretical(n_diel float64) float64 {
	if n_diel < 1.4 {
		return 1.0
	}

	enhancement := 1.0 + 0.15*(n_diel-1.4)

	if 1.8 <= n_diel && n_diel <= 2.2 {
		enhancement += 0.1
	}

	return math.Min(1.5, enhancement)
}

/*
光学定数の組から冷却性能を見積もる。

	Args:
		params: 光学定数 [n_ref, k_ref, n_diel, k_diel, n_emit, k_emit]

	Returns:
		冷却性能 ∈ [80, 500], W/m2

	Notes:
		性能スコア = 窓放射率 × 0.6 + ln(選択性) × 0.25
			+ 太陽光反射率 × 0.15 + 干渉増強 × 0.1
		とし、スコア 0.5 までは基準性能の (1 + スコア) 倍、
		それ以上は飽和領域として増加を緩める。
*/
func estimate_cooling_from_optical_params(params [6]float64) float64 {
	n_ref, k_ref, n_diel := params[0], params[1], params[2]
	n_emit, k_emit := params[4], params[5]

	solar_reflectivity := _solar_reflectivity_theoretical(n_ref, k_ref, n_diel)
	window_emissivity := _window_emissivity_theoretical(n_emit, k_emit, n_diel)

	solar_absorptivity := math.Max(0.01, 1.0-solar_reflectivity)
	selectivity := window_emissivity / solar_absorptivity

	interference := _interference_enhancement_theoretical(n_diel)

	performance_score := window_emissivity*0.6 +
		math.Log(selectivity)*0.25 +
		solar_reflectivity*0.15 +
		interference*0.1

	var cooling_power float64
	if performance_score <= 0.5 {
		cooling_power = base_cooling_power * (1.0 + performance_score)
	} else {
		cooling_power = base_cooling_power * (1.5 + 0.3*(performance_score-0.5))
	}

	return math.Max(80.0, math.Min(500.0, cooling_power))
}

// 光学定数の組を探索範囲内にクリップする。
func _clip_to_bounds(x []float64) [6]float64 {
	var clipped [6]float64
	for i := 0; i < 6; i++ {
		clipped[i] = _clip(x[i], _theoretical_bounds[i][0], _theoretical_bounds[i][1])
	}
	return clipped
}

/*
材料組合せと理想光学定数との乖離度を求める。

	Args:
		reflector: 反射層の材料
		dielectric: 誘電体層の材料
		emitter: 放射層の材料
		ideal: 理想光学定数

	Returns:
		乖離度（重み付き絶対誤差の合計、小さいほど良い）, -

	Notes:
		重みは各層で支配的な光学定数を重視する
		（反射層は k、誘電体層は n、放射層は k）。
*/
func _get_matching_score(reflector string, dielectric string, emitter string, ideal [6]float64) float64 {
	ref := _material_database[reflector]
	diel := _material_database[dielectric]
	emit := _material_database[emitter]

	ref_score := 0.3*math.Abs(ref.n-ideal[0]) + 0.7*math.Abs(ref.k-ideal[1])
	diel_score := 0.8*math.Abs(diel.n-ideal[2]) + 0.2*math.Abs(diel.k-ideal[3])
	emit_score := 0.4*math.Abs(emit.n-ideal[4]) + 0.6*math.Abs(emit.k-ideal[5])

	return ref_score + diel_score + emit_score
}

/*
材料組合せの予想冷却性能を求める。

	Args:
		reflector: 反射層の材料
		dielectric: 誘電体層の材料
		emitter: 放射層の材料

	Returns:
		予想冷却性能, W/m2
*/
func estimate_combination_performance(reflector string, dielectric string, emitter string) float64 {
	rf, ok := _reflector_factors[reflector]
	if !ok {
		panic("反射層の材料が性能加成係数の対応表にありません")
	}
	df, ok := _dielectric_factors[dielectric]
	if !ok {
		panic("誘電体層の材料が性能加成係数の対応表にありません")
	}
	ef, ok := _emitter_factors[emitter]
	if !ok {
		panic("放射層の材料が性能加成係数の対応表にありません")
	}
	return base_cooling_power * rf * df * ef
}

/*
理想光学定数に最も近い実在材料の組合せを列挙する。

	Args:
		ideal: 理想光学定数

	Returns:
		全組合せの候補（乖離度の昇順、同率は走査順を保持）
*/
func match_materials(ideal [6]float64) []MaterialCombination {
	candidates := make([]MaterialCombination, 0,
		len(_reflector_candidates)*len(_dielectric_candidates)*len(_emitter_candidates))

	for _, reflector := range _reflector_candidates {
		for _, dielectric := range _dielectric_candidates {
			for _, emitter := range _emitter_candidates {
				candidates = append(candidates, MaterialCombination{
					reflector:             reflector,
					dielectric:            dielectric,
					emitter:               emitter,
					match_score:           _get_matching_score(reflector, dielectric, emitter, ideal),
					estimated_performance: estimate_combination_performance(reflector, dielectric, emitter),
				})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].match_score < candidates[j].match_score
	})

	return candidates
}

/*
光学定数空間の大域的探索で理論上の最大冷却性能と理想材料を求める。

	Args:
		seed: 乱数種

	Returns:
		理論探索の結果とエラー

	Notes:
		CMA-ES による大域的最適化を行う。探索範囲の制約は
		目的関数内で光学定数をクリップすることで課す。
		乱数種を固定しているため同じ種に対して結果は再現する。
*/
func explore_theoretical_limit(seed uint64) (TheoreticalExplorationResult, error) {

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return -estimate_cooling_from_optical_params(_clip_to_bounds(x))
		},
	}

	x0 := make([]float64, 6)
	for i := 0; i < 6; i++ {
		x0[i] = (_theoretical_bounds[i][0] + _theoretical_bounds[i][1]) / 2.0
	}

	method := &optimize.CmaEsChol{
		Population: 50,
		Src:        rand.NewSource(seed),
	}

	settings := &optimize.Settings{
		MajorIterations: 100,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-3,
			Iterations: 20,
		},
	}

	result, err := optimize.Minimize(problem, x0, settings, method)
	if err != nil {
		return TheoreticalExplorationResult{}, err
	}

	ideal := _clip_to_bounds(result.X)
	candidates := match_materials(ideal)

	return TheoreticalExplorationResult{
		ideal_params:      ideal,
		max_cooling_power: -result.F,
		best_combination:  candidates[0],
		candidates:        candidates,
	}, nil
}
