package main

import (
	"flag"
	"fmt"
	"log"
	"time"
)

type Config struct {
	SubstrateType    string
	CorrectionMethod string
	OutputDataDir    string
	IsScanSaved      bool
	Seed             uint64
}

/*
放射冷却性能推定の実行

    Args:
        substrate_type (str): 基板の種類
        correction_method (str): 放射率の補正方法
        output_data_dir (str): 出力フォルダへのパス
        is_scan_saved: 膜厚走査の結果を出力するか否か
        seed: 理論探索の乱数種
*/
func run(
	substrate_type string,
	correction_method string,
	output_data_dir string,
	is_scan_saved bool,
	seed uint64,
) {

	// ---- 事前準備 ----

	substrate := SubstrateTypeFromString(substrate_type)
	correction := CorrectionMethodFromString(correction_method)

	log.Printf("光学定数テーブルの読み込み開始")
	model, err := NewCalibratedFilmModel(substrate, correction)
	if err != nil {
		log.Fatal(err)
	}

	// ---- スペクトル解析 ----

	log.Printf("放射率スペクトルの解析開始")
	spectral := model.spectral_analysis([]float64{1.0, 5.0, 10.0, 20.0, 50.0})
	for i, thickness := range spectral.thicknesses {
		log.Printf("膜厚 %.1f μm: 窓放射率 %.3f, 太陽光吸収率 %.3f",
			thickness, spectral.avg_emissivity_window[i], spectral.avg_emissivity_solar[i])
	}

	// ---- 膜厚最適化 ----

	log.Printf("膜厚最適化の開始")
	scan := model.thickness_optimization(3.0, 50.0, 150)

	log.Printf("最適膜厚: %.2f μm (窓放射率 %.3f, 選択性 %.2f)",
		scan.optimal_thickness, scan.optimal_window_emissivity, scan.optimal_selectivity)

	if is_scan_saved {
		recorder := NewRecorder(len(scan.thicknesses))
		recorder.record_scan(scan)
		log.Printf("Save thickness scan data to `%s`", output_data_dir)
		if err := recorder.export_csv(output_data_dir); err != nil {
			log.Fatal(err)
		}
	}

	// ---- 環境条件ごとの冷却性能 ----

	log.Printf("冷却性能の解析開始")
	evaluator, err := NewCoolingEvaluator(model)
	if err != nil {
		log.Fatal(err)
	}

	envs := get_environment_profiles()
	performances := performance_summary(evaluator, envs)
	for _, p := range performances {
		log.Printf("膜厚 %.1f μm: 平均正味冷却量 %.1f W/m2, 平均温度低下 %.1f K",
			p.thickness, p.avg_p_net, p.avg_delta_t)
	}

	// ---- 多層膜の層数解析 ----

	log.Printf("多層膜の層数解析開始")
	layer_results := analyze_layer_impact(5)
	for _, r := range layer_results {
		log.Printf("%d 層: 性能 %.1f W/m2, コスト %.2f $/m2, 成本効率 %.2f W/$",
			r.num_layers, r.performance, r.cost, r.cost_effectiveness)
	}
	optimal := find_optimal_structure(layer_results)
	log.Printf("推奨層数: %d 層 (成本効率 %.2f W/$)", optimal.num_layers, optimal.cost_effectiveness)

	// ---- 理論探索 ----

	log.Printf("理論限界の探索開始")
	exploration, err := explore_theoretical_limit(seed)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("理論最大冷却性能: %.1f W/m2", exploration.max_cooling_power)
	log.Printf("最適材料組合せ: %s/%s/%s (予想性能 %.1f W/m2)",
		exploration.best_combination.reflector,
		exploration.best_combination.dielectric,
		exploration.best_combination.emitter,
		exploration.best_combination.estimated_performance)

	// ---- 総合評価 ----

	log.Printf("設計案の総合評価開始")
	best_design, comparisons := compare_designs(evaluator, envs)
	for _, c := range comparisons {
		log.Printf("%s: 総合スコア %.3f, 回収期間 %.2f 年",
			c.evaluation.design.description, c.comprehensive_score, c.economics.payback_period)
	}
	log.Printf("推奨設計案: %s (冷却性能 %.1f W/m2)",
		best_design.evaluation.design.description, best_design.evaluation.design.performance)
}

/*
冷却性能の膜厚依存性を要約する。

    Args:
        evaluator: 冷却性能評価器
        envs: 環境条件の列

    Returns:
        膜厚ごとの冷却性能の列
*/
func performance_summary(evaluator *CoolingEvaluator, envs []EnvironmentProfile) []ThicknessPerformance {
	return evaluator.performance_analysis(1.0, 50.0, 20, envs)
}

func main() {
	var substrate string
	flag.StringVar(&substrate, "substrate", "silicon", "基板の種類を指定します。(silicon, air, metal)")

	var correction string
	flag.StringVar(&correction, "correction", "hybrid", "放射率の補正方法を指定します。(none, literature, molecular, hybrid)")

	var output_data_dir string
	flag.StringVar(&output_data_dir, "o", ".", "出力フォルダ")

	var scan_saved bool
	flag.BoolVar(&scan_saved, "scan_saved", false, "膜厚走査の結果を出力するか否かを指定します。")

	var seed uint64
	flag.Uint64Var(&seed, "seed", 1, "理論探索の乱数種を指定します。")

	// 引数を受け取る
	flag.Parse()

	// Print flag values
	fmt.Printf("substrate: %s\n", substrate)
	fmt.Printf("correction: %s\n", correction)
	fmt.Printf("output_data_dir: %s\n", output_data_dir)
	fmt.Printf("scan_saved: %t\n", scan_saved)
	fmt.Printf("seed: %d\n", seed)

	start := time.Now()

	run(
		substrate,
		correction,
		output_data_dir,
		scan_saved,
		seed,
	)

	elapsedTime := time.Since(start)
	log.Printf("elapsed_time: %v [sec]", elapsedTime)
}
