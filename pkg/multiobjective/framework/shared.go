package framework

// CompareViolation orders two individuals by constraint violation only:
// -1 when a violates less than b, 1 when b violates less, 0 otherwise.
// Two feasible individuals always tie.
func CompareViolation(a, b *Individual) int {
	switch {
	case a.Violation <= 0 && b.Violation <= 0:
		return 0
	case a.Violation < b.Violation:
		return -1
	case a.Violation > b.Violation:
		return 1
	}
	return 0
}

// CompareDominance compares by constraint violation first and, only on a tie,
// by Pareto dominance. It returns -1 when a dominates b, 1 when b dominates a
// and 0 when neither does.
func CompareDominance(a, b *Individual) int {
	if flag := CompareViolation(a, b); flag != 0 {
		return flag
	}
	if Dominates(a, b) {
		return -1
	}
	if Dominates(b, a) {
		return 1
	}
	return 0
}

// Dominates checks if individual a dominates individual b
func Dominates(a, b *Individual) bool {
	better := false
	for i := 0; i < len(a.Objectives); i++ {
		if a.Objectives[i] > b.Objectives[i] {
			return false
		}
		if a.Objectives[i] < b.Objectives[i] {
			better = true
		}
	}
	return better
}

// SameObjectives reports whether a and b coincide in objective space.
func SameObjectives(a, b *Individual) bool {
	if len(a.Objectives) != len(b.Objectives) {
		return false
	}
	for i := range a.Objectives {
		if a.Objectives[i] != b.Objectives[i] {
			return false
		}
	}
	return true
}

// NonDominatedSort performs non-dominated sorting on the population.
// fronts[0] holds the individuals no other individual dominates.
func NonDominatedSort(population []*Individual) [][]*Individual {
	var fronts [][]*Individual
	if len(population) == 0 {
		return fronts
	}
	dominated := make([][]int, len(population))
	domCount := make([]int, len(population))

	// Calculate domination for each individual
	for i := 0; i < len(population); i++ {
		for j := 0; j < len(population); j++ {
			if i == j {
				continue
			}
			switch CompareDominance(population[i], population[j]) {
			case -1:
				dominated[i] = append(dominated[i], j)
			case 1:
				domCount[i]++
			}
		}
	}

	// Find first front
	currentFront := []int{}
	for i := 0; i < len(population); i++ {
		if domCount[i] == 0 {
			currentFront = append(currentFront, i)
		}
	}

	// Find subsequent fronts
	for len(currentFront) > 0 {
		front := make([]*Individual, len(currentFront))
		for k, idx := range currentFront {
			front[k] = population[idx]
		}
		fronts = append(fronts, front)

		nextFront := []int{}
		for _, idx := range currentFront {
			for _, dominatedIdx := range dominated[idx] {
				domCount[dominatedIdx]--
				if domCount[dominatedIdx] == 0 {
					nextFront = append(nextFront, dominatedIdx)
				}
			}
		}
		currentFront = nextFront
	}

	return fronts
}

// DominancePartition splits a population into the strictly non-dominated
// individuals and the rest.
type DominancePartition struct {
	NonDominated []*Individual
	Dominated    []*Individual
}

// Partition marks an individual as dominated when another one dominates it
// (constraint violation first), or when a later individual has exactly the
// same objective vector. At most one copy of every objective vector survives
// in NonDominated. Relative order is preserved in both subsets.
func Partition(population []*Individual) DominancePartition {
	dominated := make([]bool, len(population))

	for p := 0; p < len(population)-1; p++ {
		for q := p + 1; q < len(population); q++ {
			switch CompareDominance(population[p], population[q]) {
			case -1:
				dominated[q] = true
			case 1:
				dominated[p] = true
			default:
				if SameObjectives(population[p], population[q]) {
					dominated[p] = true
				}
			}
		}
	}

	var part DominancePartition
	for i, ind := range population {
		if dominated[i] {
			part.Dominated = append(part.Dominated, ind)
		} else {
			part.NonDominated = append(part.NonDominated, ind)
		}
	}
	return part
}
