package main

// 波長帯の区分
type WavelengthBand int

// 波長帯の区分の定数
const (
	BandSolar  WavelengthBand = iota // 太陽波長帯
	BandWindow                       // 大気の窓波長帯
	BandOther                        // その他の波長帯（帯間のギャップ及び遠赤外を含む）
)

func (b WavelengthBand) String() string {
	return [...]string{"solar", "window", "other"}[b]
}

// 波長帯の定義
type BandDefinition struct {
	lambda_min float64 // 下限波長, μm
	lambda_max float64 // 上限波長, μm
}

/*
波長帯の定義を作成する。

	Args:
		lambda_min: 下限波長, μm
		lambda_max: 上限波長, μm

	Returns:
		波長帯の定義

	Notes:
		下限波長は上限波長より小さい値でなければならない。
*/
func NewBandDefinition(lambda_min float64, lambda_max float64) BandDefinition {
	if lambda_min >= lambda_max {
		panic("波長帯の下限波長が上限波長以上の値となっています")
	}
	return BandDefinition{lambda_min: lambda_min, lambda_max: lambda_max}
}

// 太陽波長帯の定義, μm
func get_solar_band() BandDefinition {
	return BandDefinition{lambda_min: 0.3, lambda_max: 2.5}
}

// 大気の窓波長帯の定義, μm
// 地球大気の透過率が高く宇宙への直接放熱が可能な波長帯。
func get_window_band() BandDefinition {
	return BandDefinition{lambda_min: 8.0, lambda_max: 13.0}
}

/*
波長が属する波長帯を判定する。

	Args:
		lambda: 波長, μm

	Returns:
		波長帯の区分

	Notes:
		太陽波長帯 [0.3, 2.5] μm・大気の窓波長帯 [8, 13] μm のいずれにも
		属さない波長（ギャップ (2.5, 8) μm 及び遠赤外 > 13 μm）はその他とする。
		境界値はいずれも両端を含む。
*/
func classify_band(lambda float64) WavelengthBand {
	solar := get_solar_band()
	window := get_window_band()

	switch {
	case solar.lambda_min <= lambda && lambda <= solar.lambda_max:
		return BandSolar
	case window.lambda_min <= lambda && lambda <= window.lambda_max:
		return BandWindow
	default:
		return BandOther
	}
}
