package main

import (
	"math"
)

// 環境調整係数の基準条件（Zhai et al. の実験条件）
const (
	t_amb_ref = 300.0 // 基準外気温度, K
	t_sky_ref = 275.0 // 基準天空温度, K
	g_sun_ref = 800.0 // 基準全天日射量, W/m2
	wind_ref  = 1.0   // 基準風速, m/s
)

// 環境条件
type EnvironmentProfile struct {
	t_amb      float64 // 外気温度, K
	t_sky      float64 // 天空温度, K
	g_sun      float64 // 全天日射量, W/m2
	wind_speed float64 // 風速, m/s
	label      string  // 環境条件の名称
}

/*
環境条件を作成する。

	Args:
		t_amb: 外気温度, K
		t_sky: 天空温度, K
		g_sun: 全天日射量, W/m2
		wind_speed: 風速, m/s
		label: 環境条件の名称

	Returns:
		環境条件

	Notes:
		外気温度は天空温度より高い値でなければならない
		（T^4項が正の正味冷却となる物理的前提）。
*/
func NewEnvironmentProfile(t_amb float64, t_sky float64, g_sun float64, wind_speed float64, label string) EnvironmentProfile {
	if t_amb <= t_sky {
		panic("外気温度が天空温度以下の値となっています")
	}
	return EnvironmentProfile{
		t_amb:      t_amb,
		t_sky:      t_sky,
		g_sun:      g_sun,
		wind_speed: wind_speed,
		label:      label,
	}
}

/*
文献に基づく代表的な環境条件の一覧を返す。

	Returns:
		環境条件の列（温帯夏季・乾燥砂漠・熱帯沿岸）
*/
func get_environment_profiles() []EnvironmentProfile {
	return []EnvironmentProfile{
		NewEnvironmentProfile(300.0, 275.0, 800.0, 1.0, "temperate_summer"),
		NewEnvironmentProfile(310.0, 265.0, 1000.0, 0.5, "arid_desert"),
		NewEnvironmentProfile(305.0, 285.0, 900.0, 1.5, "tropical_coastal"),
	}
}

/*
環境条件による性能の調整係数を求める。

	Returns:
		環境調整係数 ∈ [0.3, 1.5], -

	Notes:
		温度係数 = (T_amb^4 - T_sky^4) / (T_amb_ref^4 - T_sky_ref^4)
		日射係数 = 1 - 0.0005・(G_sun - G_sun_ref)（100 W/m2 増加ごとに5%低下）
		風速係数 = 1 - 0.05・(風速 - 基準風速)（1 m/s 増加ごとに5%低下）
		の積を [0.3, 1.5] にクリップする。
*/
func (p EnvironmentProfile) get_env_adjustment() float64 {
	temp_factor := (math.Pow(p.t_amb, 4.0) - math.Pow(p.t_sky, 4.0)) /
		(math.Pow(t_amb_ref, 4.0) - math.Pow(t_sky_ref, 4.0))

	solar_factor := 1.0 - 0.0005*(p.g_sun-g_sun_ref)

	wind_factor := 1.0 - 0.05*(p.wind_speed-wind_ref)

	adjustment := temp_factor * solar_factor * wind_factor

	return math.Max(0.3, math.Min(adjustment, 1.5))
}
