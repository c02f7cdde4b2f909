package main

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// 波長帯平均放射率の標準サンプル数
const default_band_samples = 30

// PDMS薄膜の放射率推定モデル
// 光学定数テーブル・基板別レジームテーブル・補正段を束ねる。
// 構築後は不変であり、全ての計算は入力のみの純関数となる。
type FilmModel struct {
	table      *OpticalConstantTable
	substrate  SubstrateType
	correction CorrectionMethod
	calibrated bool // 大気の窓波長帯の文献校正（最終段）を適用するか否か
}

/*
放射率推定モデルを作成する。

	Args:
		substrate: 基板の種類
		correction: 補正方法

	Returns:
		放射率推定モデル
*/
func NewFilmModel(substrate SubstrateType, correction CorrectionMethod) (*FilmModel, error) {
	table, err := NewOpticalConstantTable()
	if err != nil {
		return nil, err
	}
	return &FilmModel{
		table:      table,
		substrate:  substrate,
		correction: correction,
		calibrated: false,
	}, nil
}

/*
文献校正付きの放射率推定モデルを作成する。

	Args:
		substrate: 基板の種類
		correction: 補正方法

	Returns:
		放射率推定モデル

	Notes:
		選択した補正方法の上に、大気の窓波長帯の文献校正（最終段）を
		無条件に適用する。
*/
func NewCalibratedFilmModel(substrate SubstrateType, correction CorrectionMethod) (*FilmModel, error) {
	m, err := NewFilmModel(substrate, correction)
	if err != nil {
		return nil, err
	}
	m.calibrated = true
	return m, nil
}

/*
物理モデルによる基礎放射率を求める。

	Args:
		lambda: 波長, μm
		thickness: 膜厚, μm

	Returns:
		基礎放射率 ∈ [0, 0.98], -

	Notes:
		材料吸収・干渉効果・基板の影響を波長帯別の経験式で近似する。
		全ての分岐が定義されており、エラーは発生しない。
*/
func (m *FilmModel) get_base_emissivity(lambda float64, thickness float64) float64 {
	n, k := m.table.get_n_k(lambda)

	// 吸収係数, μm-1
	alpha := get_absorption_coefficient(k, lambda)

	band := classify_band(lambda)
	regime := _regime_table[m.substrate][band]

	return _clip(regime(lambda, thickness, n, k, alpha), 0.0, epsilon_max)
}

/*
補正・校正を適用した放射率を求める。

	Args:
		lambda: 波長, μm
		thickness: 膜厚, μm

	Returns:
		放射率, -
*/
func (m *FilmModel) get_emissivity(lambda float64, thickness float64) float64 {
	base_epsilon := m.get_base_emissivity(lambda, thickness)

	epsilon := apply_correction(m.correction, lambda, thickness, base_epsilon)

	if m.calibrated {
		epsilon = _window_calibration(lambda, thickness, epsilon)
	}

	return epsilon
}

/*
波長帯の平均放射率を求める。

	Args:
		band: 波長帯の定義
		thickness: 膜厚, μm
		n_samples: サンプル数（両端を含む等間隔サンプリング）

	Returns:
		波長帯平均放射率, -

	Notes:
		サンプル数を固定すれば決定的であり、乱数は用いない。
*/
func (m *FilmModel) get_band_emissivity(band BandDefinition, thickness float64, n_samples int) float64 {
	wavelengths := make([]float64, n_samples)
	floats.Span(wavelengths, band.lambda_min, band.lambda_max)

	emissivities := make([]float64, n_samples)
	for i, lambda := range wavelengths {
		emissivities[i] = m.get_emissivity(lambda, thickness)
	}

	return stat.Mean(emissivities, nil)
}

// 光スペクトル解析の結果
type SpectralAnalysisResult struct {
	wavelengths           []float64             // 解析波長, μm, [n]
	thicknesses           []float64             // 解析膜厚, μm, [m]
	emissivity_spectra    map[float64][]float64 // 膜厚ごとの放射率スペクトル, -, {膜厚: [n]}
	avg_emissivity_window []float64             // 膜厚ごとの大気の窓平均放射率, -, [m]
	avg_emissivity_solar  []float64             // 膜厚ごとの太陽波長帯平均放射率, -, [m]
}

/*
光スペクトル解析を行う。

	Args:
		thicknesses: 解析する膜厚の列, μm

	Returns:
		光スペクトル解析の結果

	Notes:
		波長 0.3～25 μm を200点でサンプリングする。
*/
func (m *FilmModel) spectral_analysis(thicknesses []float64) SpectralAnalysisResult {
	wavelengths := make([]float64, 200)
	floats.Span(wavelengths, 0.3, 25.0)

	result := SpectralAnalysisResult{
		wavelengths:           wavelengths,
		thicknesses:           thicknesses,
		emissivity_spectra:    make(map[float64][]float64, len(thicknesses)),
		avg_emissivity_window: make([]float64, 0, len(thicknesses)),
		avg_emissivity_solar:  make([]float64, 0, len(thicknesses)),
	}

	for _, thickness := range thicknesses {
		emissivities := make([]float64, len(wavelengths))
		for i, lambda := range wavelengths {
			emissivities[i] = m.get_emissivity(lambda, thickness)
		}
		result.emissivity_spectra[thickness] = emissivities

		result.avg_emissivity_window = append(result.avg_emissivity_window,
			m.get_band_emissivity(get_window_band(), thickness, default_band_samples))
		result.avg_emissivity_solar = append(result.avg_emissivity_solar,
			m.get_band_emissivity(get_solar_band(), thickness, default_band_samples))
	}

	return result
}

// 膜厚最適化の結果
type ThicknessOptimizationResult struct {
	thicknesses               []float64 // 探索した膜厚, μm, [n]
	window_emissivities       []float64 // 大気の窓平均放射率, -, [n]
	solar_emissivities        []float64 // 太陽波長帯平均放射率, -, [n]
	performance_scores        []float64 // 性能評点, -, [n]
	optimal_thickness         float64   // 最適膜厚, μm
	optimal_window_emissivity float64   // 最適膜厚の大気の窓平均放射率, -
	optimal_solar_emissivity  float64   // 最適膜厚の太陽波長帯平均放射率, -
	optimal_selectivity       float64   // 最適膜厚の選択性, -
}

/*
膜厚の格子探索による最適化を行う。

	Args:
		thickness_min: 探索範囲の下限, μm
		thickness_max: 探索範囲の上限, μm
		n_points: 探索点数

	Returns:
		膜厚最適化の結果

	Notes:
		評点 = 窓平均放射率 × 選択性
		（選択性 = 窓平均放射率 / max(太陽平均放射率, 0.01)）とし、
		評点最大の膜厚を選ぶ。決定的であり、同一入力に対して常に
		同一の結果を返す。太陽吸収率の下限 0.01 は零除算を防ぐための
		必須の不変条件である。
*/
func (m *FilmModel) thickness_optimization(thickness_min float64, thickness_max float64, n_points int) ThicknessOptimizationResult {
	if thickness_min <= 0.0 || thickness_min >= thickness_max {
		panic("膜厚の探索範囲が不正です")
	}

	thicknesses := make([]float64, n_points)
	floats.Span(thicknesses, thickness_min, thickness_max)

	window_emissivities := make([]float64, n_points)
	solar_emissivities := make([]float64, n_points)
	performance_scores := make([]float64, n_points)

	for i, thickness := range thicknesses {
		window_emissivity := m.get_band_emissivity(get_window_band(), thickness, default_band_samples)
		solar_emissivity := m.get_band_emissivity(get_solar_band(), thickness, default_band_samples)

		selectivity := window_emissivity / math.Max(solar_emissivity, 0.01)

		window_emissivities[i] = window_emissivity
		solar_emissivities[i] = solar_emissivity
		performance_scores[i] = window_emissivity * selectivity
	}

	optimal_idx := floats.MaxIdx(performance_scores)

	optimal_window := window_emissivities[optimal_idx]
	optimal_solar := solar_emissivities[optimal_idx]

	return ThicknessOptimizationResult{
		thicknesses:               thicknesses,
		window_emissivities:       window_emissivities,
		solar_emissivities:        solar_emissivities,
		performance_scores:        performance_scores,
		optimal_thickness:         thicknesses[optimal_idx],
		optimal_window_emissivity: optimal_window,
		optimal_solar_emissivity:  optimal_solar,
		optimal_selectivity:       optimal_window / math.Max(optimal_solar, 0.01),
	}
}
