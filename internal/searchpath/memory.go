package searchpath

// MemoryStore keeps the value in memory. It backs dry runs and tests.
type MemoryStore struct {
	Value    string
	Delim    string
	ReadErr  error
	WriteErr error

	// Writes counts successful Write calls.
	Writes int
}

func (m *MemoryStore) Read() (string, error) {
	if m.ReadErr != nil {
		return "", m.ReadErr
	}
	return m.Value, nil
}

func (m *MemoryStore) Write(value string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Value = value
	m.Writes++
	return nil
}

func (m *MemoryStore) Delimiter() string {
	if m.Delim == "" {
		return ";"
	}
	return m.Delim
}

func (m *MemoryStore) Location() string { return "memory" }
