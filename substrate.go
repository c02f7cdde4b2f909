package main

// 基板の種類
type SubstrateType string

// 基板の種類の定数
const (
	SubstrateSilicon SubstrateType = "silicon" // シリコン基板（実用に最も近い）
	SubstrateAir     SubstrateType = "air"     // 空気基板（自立膜）
	SubstrateMetal   SubstrateType = "metal"   // 金属基板
)

func SubstrateTypeFromString(s string) SubstrateType {
	switch s {
	case "silicon":
		return SubstrateSilicon
	case "air":
		return SubstrateAir
	case "metal":
		return SubstrateMetal
	default:
		panic("invalid substrate type")
	}
}

// 放射率の補正方法
type CorrectionMethod string

// 放射率の補正方法の定数
const (
	CorrectionNone       CorrectionMethod = "none"       // 補正なし（物理モデルのまま）
	CorrectionLiterature CorrectionMethod = "literature" // 文献値への線形リマップ
	CorrectionMolecular  CorrectionMethod = "molecular"  // 分子振動吸収ピークによる補正
	CorrectionHybrid     CorrectionMethod = "hybrid"     // 分子振動補正＋文献校正点への混合
)

func CorrectionMethodFromString(s string) CorrectionMethod {
	switch s {
	case "none":
		return CorrectionNone
	case "literature":
		return CorrectionLiterature
	case "molecular":
		return CorrectionMolecular
	case "hybrid":
		return CorrectionHybrid
	default:
		panic("invalid correction method")
	}
}
