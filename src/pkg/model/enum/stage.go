package enum

type Stage int

const (
	StageLocal Stage = iota
	StageBeta
	StageProd
)

func (s Stage) String() string {
	return []string{
		"local",
		"beta",
		"prod",
	}[s]
}

func ToStage(str string) Stage {
	switch str {
	case "local":
		return StageLocal
	case "beta":
		return StageBeta
	default:
		return StageProd
	}
}
