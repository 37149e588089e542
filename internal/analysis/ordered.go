package analysis

// orderedGroups buckets values by key and iterates keys in first-seen order.
type orderedGroups[T any] struct {
	keys   []string
	index  map[string]int
	values [][]T
}

func newOrderedGroups[T any]() *orderedGroups[T] {
	return &orderedGroups[T]{index: make(map[string]int)}
}

func (g *orderedGroups[T]) add(key string, v T) {
	i, ok := g.index[key]
	if !ok {
		i = len(g.keys)
		g.index[key] = i
		g.keys = append(g.keys, key)
		g.values = append(g.values, nil)
	}
	g.values[i] = append(g.values[i], v)
}

func (g *orderedGroups[T]) each(fn func(key string, values []T)) {
	for i, key := range g.keys {
		fn(key, g.values[i])
	}
}

func (g *orderedGroups[T]) len() int {
	return len(g.keys)
}
