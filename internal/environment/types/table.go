package types

// EnvVarTable maps keys to normalized defaults, iterating in first-seen
// order. Setting an existing key replaces its value in place.
type EnvVarTable struct {
	keys   []string
	values map[string]NormalizedDefault
}

func NewEnvVarTable() *EnvVarTable {
	return &EnvVarTable{values: make(map[string]NormalizedDefault)}
}

func (t *EnvVarTable) Set(key string, value NormalizedDefault) {
	if _, exists := t.values[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

func (t *EnvVarTable) Get(key string) (NormalizedDefault, bool) {
	value, ok := t.values[key]
	return value, ok
}

func (t *EnvVarTable) Keys() []string {
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

func (t *EnvVarTable) Len() int {
	return len(t.keys)
}

// Each calls fn for every entry in order, stopping when fn returns false.
func (t *EnvVarTable) Each(fn func(key string, value NormalizedDefault) bool) {
	for _, key := range t.keys {
		if !fn(key, t.values[key]) {
			return
		}
	}
}
