package wheel

// Source - источник равномерных чисел в [0, 1). *rand.Rand подходит.
type Source interface {
	Float64() float64
}

// Sample выбирает индекс сектора с вероятностью weight/total.
// Секторы проходятся в фиксированном порядке, диапазоны полуоткрытые [acc, acc+w).
func Sample(segments []Segment, rng Source) (int, error) {
	if len(segments) == 0 {
		return 0, ErrEmptyPool
	}

	var total float64
	for _, s := range segments {
		total += s.Weight
	}

	r := rng.Float64() * total
	var acc float64
	for i, s := range segments {
		if r >= acc && r < acc+s.Weight {
			return i, nil
		}
		acc += s.Weight
	}

	// остаток от округления достаётся последнему сектору
	return len(segments) - 1, nil
}
