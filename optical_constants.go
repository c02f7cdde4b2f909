package main

import (
	_ "embed"
	"fmt"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/interp"
)

// PDMSの光学定数データ（波長, 屈折率 n, 消光係数 k）
// 波長昇順・重複なしで整列されたCSV。
//
//go:embed data/pdms_nk.csv
var _pdms_nk_csv []byte

// 光学定数の測定点
type OpticalSample struct {
	Wavelength float64 `csv:"wavelength"` // 波長, μm
	N          float64 `csv:"n"`          // 屈折率, -
	K          float64 `csv:"k"`          // 消光係数, -
}

// 光学定数テーブル
// 波長に対する (n, k) の区分線形補間を行う。
type OpticalConstantTable struct {
	samples  []OpticalSample
	n_interp interp.PiecewiseLinear
	k_interp interp.PiecewiseLinear
}

/*
組み込みのPDMS光学定数データから光学定数テーブルを作成する。

	Returns:
		光学定数テーブル

	Notes:
		波長は狭義単調増加で2点以上なければならない。
*/
func NewOpticalConstantTable() (*OpticalConstantTable, error) {
	var samples []OpticalSample
	if err := gocsv.UnmarshalBytes(_pdms_nk_csv, &samples); err != nil {
		return nil, err
	}
	return NewOpticalConstantTableFromSamples(samples)
}

/*
測定点列から光学定数テーブルを作成する。

	Args:
		samples: 光学定数の測定点列（波長昇順）

	Returns:
		光学定数テーブル
*/
func NewOpticalConstantTableFromSamples(samples []OpticalSample) (*OpticalConstantTable, error) {
	if len(samples) < 2 {
		return nil, fmt.Errorf("光学定数データの点数が不足しています: %d", len(samples))
	}

	wavelengths := make([]float64, len(samples))
	ns := make([]float64, len(samples))
	ks := make([]float64, len(samples))
	for i, s := range samples {
		if i > 0 && s.Wavelength <= samples[i-1].Wavelength {
			return nil, fmt.Errorf("光学定数データの波長が昇順になっていません: %f", s.Wavelength)
		}
		wavelengths[i] = s.Wavelength
		ns[i] = s.N
		ks[i] = s.K
	}

	t := &OpticalConstantTable{samples: samples}
	if err := t.n_interp.Fit(wavelengths, ns); err != nil {
		return nil, err
	}
	if err := t.k_interp.Fit(wavelengths, ks); err != nil {
		return nil, err
	}
	return t, nil
}

/*
波長に対する光学定数 (n, k) を取得する。

	Args:
		lambda: 波長, μm

	Returns:
		(1) 屈折率 n, -
		(2) 消光係数 k, -

	Notes:
		テーブル範囲内は隣接2点間の区分線形補間とする。
		範囲外は端点の値で一定とする（線形外挿は行わない）。
		どの正の波長に対しても定義されるためエラーは発生しない。
*/
func (t *OpticalConstantTable) get_n_k(lambda float64) (n float64, k float64) {
	return t.n_interp.Predict(lambda), t.k_interp.Predict(lambda)
}

// テーブルの波長範囲, μm
func (t *OpticalConstantTable) get_wavelength_range() (lambda_min float64, lambda_max float64) {
	return t.samples[0].Wavelength, t.samples[len(t.samples)-1].Wavelength
}
