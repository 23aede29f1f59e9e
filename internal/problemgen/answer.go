package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// CheckAnswer compares the learner's input against the correct answer.
// Returns true if the answer is correct.
//
// Normalization rules:
//   - Whitespace is trimmed
//   - For fractions: both sides are reduced, so "4/6" matches "2/3"; a whole
//     number matches n/1
//   - For decimals: trailing zeros are ignored (e.g., "3.50" matches "3.5")
//   - For integers: leading zeros are ignored (e.g., "007" matches "7")
//   - For multiples of π: "9π", "9p" and "9pi" all match "9π"
func CheckAnswer(learnerAnswer string, p *Problem) bool {
	learnerAnswer = strings.TrimSpace(learnerAnswer)
	if learnerAnswer == "" || p == nil {
		return false
	}

	normalizedLearner, err := normalizeAnswer(learnerAnswer, p.AnswerType)
	if err != nil {
		return false
	}
	normalizedCorrect, err := normalizeAnswer(p.Answer, p.AnswerType)
	if err != nil {
		return false
	}
	return normalizedLearner == normalizedCorrect
}

// normalizeAnswer normalizes an answer string for comparison.
func normalizeAnswer(answer string, answerType AnswerType) (string, error) {
	answer = strings.TrimSpace(answer)

	switch answerType {
	case AnswerTypeInteger:
		n, err := strconv.ParseInt(answer, 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid integer: %w", err)
		}
		return strconv.FormatInt(n, 10), nil

	case AnswerTypeDecimal:
		f, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			return "", fmt.Errorf("invalid decimal: %w", err)
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil

	case AnswerTypeFraction:
		if !strings.Contains(answer, "/") {
			answer += "/1"
		}
		num, den, err := parseFraction(answer)
		if err != nil {
			return "", err
		}
		if den == 0 {
			return "", fmt.Errorf("zero denominator")
		}
		// Normalize sign: negative sign on numerator only.
		if den < 0 {
			num = -num
			den = -den
		}
		g := gcd(abs(num), den)
		num /= g
		den /= g
		return fmt.Sprintf("%d/%d", num, den), nil

	case AnswerTypePi:
		// The π suffix is mandatory: "9" is a number, not 9π.
		coeff, found := "", false
		for _, suffix := range []string{"π", "pi", "p"} {
			if c, ok := strings.CutSuffix(answer, suffix); ok {
				coeff, found = c, true
				break
			}
		}
		if !found {
			return "", fmt.Errorf("missing π in %q", answer)
		}
		n, err := strconv.ParseInt(strings.TrimSpace(coeff), 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid multiple of pi: %w", err)
		}
		return strconv.FormatInt(n, 10) + "π", nil

	default:
		return answer, nil
	}
}

// parseFraction parses "a/b" into numerator and denominator.
func parseFraction(s string) (int64, int64, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid fraction format: %q", s)
	}
	num, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid numerator: %w", err)
	}
	den, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid denominator: %w", err)
	}
	return num, den, nil
}

// gcd returns the greatest common divisor of a and b.
// Both a and b must be non-negative.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// GCD returns the greatest common divisor of |a| and |b|.
func GCD(a, b int) int {
	return int(gcd(abs(int64(a)), abs(int64(b))))
}

// abs returns the absolute value of n.
func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
