package main

import (
	"fmt"
	"math"
	"os"

	"github.com/gocarina/gocsv"
)

// 膜厚走査の1点分の記録
type ThicknessScanRecord struct {
	Thickness        float64 `csv:"thickness"`
	WindowEmissivity float64 `csv:"window_emissivity"`
	SolarEmissivity  float64 `csv:"solar_emissivity"`
	Selectivity      float64 `csv:"selectivity"`
	PerformanceScore float64 `csv:"performance_score"`
}

// 解析結果の記録器
type Recorder struct {
	records []*ThicknessScanRecord
}

func NewRecorder(n_points int) *Recorder {
	return &Recorder{
		records: make([]*ThicknessScanRecord, 0, n_points),
	}
}

/*
膜厚最適化の走査結果をまとめて記録する。

	Args:
		r: 膜厚最適化の結果
*/
func (self *Recorder) record_scan(r ThicknessOptimizationResult) {
	for i, thickness := range r.thicknesses {
		window := r.window_emissivities[i]
		solar := r.solar_emissivities[i]
		self.records = append(self.records, &ThicknessScanRecord{
			Thickness:        thickness,
			WindowEmissivity: window,
			SolarEmissivity:  solar,
			Selectivity:      window / math.Max(solar, 0.01),
			PerformanceScore: r.performance_scores[i],
		})
	}
}

/*
記録した膜厚走査の結果を CSV ファイルに書き出す。

	Args:
		output_dir: 出力先ディレクトリ

	Returns:
		エラー
*/
func (self *Recorder) export_csv(output_dir string) error {

	if _, err := os.Stat(output_dir); os.IsNotExist(err) {
		if err := os.MkdirAll(output_dir, 0755); err != nil {
			return err
		}
	}

	path := fmt.Sprintf("%s/thickness_scan.csv", output_dir)

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return gocsv.MarshalFile(&self.records, file)
}
