package recognize

type strSource string

func (s strSource) Len() int      { return len(s) }
func (s strSource) At(i int) byte { return s[i] }
