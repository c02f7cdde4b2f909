package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_補正なし_基礎放射率をそのまま返す(t *testing.T) {
	for _, base := range []float64{0.0, 0.3, 0.7, 0.98} {
		assert.Equal(t, base, apply_correction(CorrectionNone, 10.0, 11.0, base))
	}
}

func Test_文献補正_窓波長帯のリマップ(t *testing.T) {
	// 基礎放射率 0.3 は目標範囲の下限へ、0.7 は上限へ写像される
	assert.InDelta(t, 0.85, _literature_correction(9.0, 11.0, 0.3), 1e-12)
	assert.InDelta(t, 0.92, _literature_correction(9.0, 11.0, 0.7), 1e-12)

	// λ > 10 μm は CH3振動域の目標範囲
	assert.InDelta(t, 0.88, _literature_correction(12.0, 11.0, 0.3), 1e-12)
	assert.InDelta(t, 0.95, _literature_correction(12.0, 11.0, 0.7), 1e-12)
}

func Test_文献補正_薄膜は基礎値との加重平均(t *testing.T) {
	base := 0.3
	// 膜厚 1.5 μm: 重み = 0.5
	expected := 0.5*0.85 + 0.5*base
	assert.InDelta(t, expected, _literature_correction(9.0, 1.5, base), 1e-12)
}

func Test_文献補正_太陽波長帯は減衰(t *testing.T) {
	assert.InDelta(t, 0.08*0.9, _literature_correction(0.5, 11.0, 0.08), 1e-12)
}

func Test_文献補正_帯域外は素通し(t *testing.T) {
	assert.Equal(t, 0.55, _literature_correction(5.0, 11.0, 0.55))
	assert.Equal(t, 0.55, _literature_correction(20.0, 11.0, 0.55))
}

func Test_分子振動補正_ピーク中心で増倍(t *testing.T) {
	base := 0.5
	// λ = 9.0 μm（Si-O-Si主ピーク中心）: 12.5 μmピークの裾も効く
	enhancement := 1.0 + 0.4 + 0.3*math.Exp(-0.5*3.5*3.5)
	thickness_factor := 1.0 + 0.25*(1.0-math.Exp(-11.0/5.0))
	expected := math.Min(0.95, base*enhancement*thickness_factor)
	assert.InDelta(t, expected, _molecular_correction(9.0, 11.0, base), 1e-12)
}

func Test_分子振動補正_上限を超えない(t *testing.T) {
	corrected := _molecular_correction(9.0, 50.0, 0.9)
	assert.LessOrEqual(t, corrected, 0.95)
}

func Test_混合補正_校正点上では目標値に一致(t *testing.T) {
	// λ = 10 μm は校正点そのものであり重みは 1 となる
	assert.InDelta(t, 0.90, _hybrid_correction(10.0, 11.0, 0.5), 1e-12)
	assert.InDelta(t, 0.92, _hybrid_correction(12.0, 11.0, 0.5), 1e-12)
}

func Test_窓校正_厚膜は一定値(t *testing.T) {
	assert.InDelta(t, 0.90, _window_calibration(10.0, 5.0, 0.7), 1e-9)
	assert.InDelta(t, 0.90, _window_calibration(10.0, 50.0, 0.98), 1e-9)
}

func Test_窓校正_薄膜は加重平均(t *testing.T) {
	// 膜厚 2.5 μm: 重み = 0.5
	expected := 0.5*0.92 + 0.5*0.6
	assert.InDelta(t, expected, _window_calibration(10.0, 2.5, 0.6), 1e-12)
}

func Test_窓校正_帯域外は素通し(t *testing.T) {
	assert.Equal(t, 0.6, _window_calibration(7.9, 11.0, 0.6))
	assert.Equal(t, 0.6, _window_calibration(13.1, 11.0, 0.6))
}

func Test_校正モデル_窓波長帯の文献値再現(t *testing.T) {
	model, err := NewCalibratedFilmModel(SubstrateSilicon, CorrectionHybrid)
	require.NoError(t, err)

	// 膜厚 5 μm 以上では λ = 10 μm の放射率は文献校正により 0.90 となる
	assert.InDelta(t, 0.90, model.get_emissivity(10.0, 5.0), 1e-9)
	assert.InDelta(t, 0.90, model.get_emissivity(10.0, 20.0), 1e-9)
}

func Test_非校正モデル_窓校正は適用されない(t *testing.T) {
	calibrated, err := NewCalibratedFilmModel(SubstrateSilicon, CorrectionNone)
	require.NoError(t, err)
	uncalibrated, err := NewFilmModel(SubstrateSilicon, CorrectionNone)
	require.NoError(t, err)

	// 校正の有無で窓波長帯の放射率が異なる
	assert.NotEqual(t,
		uncalibrated.get_emissivity(10.0, 20.0),
		calibrated.get_emissivity(10.0, 20.0))

	// 帯域外では一致する
	assert.Equal(t,
		uncalibrated.get_emissivity(5.0, 20.0),
		calibrated.get_emissivity(5.0, 20.0))
}
