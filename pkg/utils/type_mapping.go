package utils

// 돌하르방 유형 코드와 유형명 매핑
var TypeMapping = map[string]string{
	"A-C-E": "체험형",
	"A-C-F": "힐링형",
	"A-D-E": "액티비티형",
	"A-D-F": "먹방형",
	"B-C-E": "레트로형",
	"B-C-F": "문화예술형",
	"B-D-E": "인생샷투어형",
	"B-D-F": "네트워킹형",
}

// ResultCodes lists every valid 3-letter code, one per personality type.
var ResultCodes = []string{
	"A-C-E", "A-C-F", "A-D-E", "A-D-F",
	"B-C-E", "B-C-F", "B-D-E", "B-D-F",
}

// TypeName returns the display name for a result code, or the code itself
// when it is not one of the eight known codes.
func TypeName(code string) string {
	if name, ok := TypeMapping[code]; ok {
		return name
	}
	return code
}
