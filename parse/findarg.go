package parse

// FindTNetStringArg looks up key in the net-string map or array at the
// start of buf without building a tree.  Map keys are compared with key
// at every level, descending into nested maps and arrays in order.  On a
// match it returns the payload and tag of the value following the key,
// and the bytes after that value within its enclosing payload.
func FindTNetStringArg(buf []byte, key string) (val []byte, tag byte, rest []byte, ok bool) {
	p := newParser(buf, 0, newOpts(nil))
	p.skipWS()
	payload, _, t, err := p.splitNet()
	if err != nil {
		return nil, 0, nil, false
	}
	return findIn(payload, t, key)
}

func findIn(payload []byte, t byte, key string) ([]byte, byte, []byte, bool) {
	switch t {
	case '}':
		return findInMap(payload, key)
	case ']':
		return findInArray(payload, key)
	}
	return nil, 0, nil, false
}

func findInMap(payload []byte, key string) ([]byte, byte, []byte, bool) {
	p := newParser(payload, 0, newOpts(nil))
	for {
		p.skipSep()
		if p.eof() {
			return nil, 0, nil, false
		}
		k, _, kt, err := p.splitNet()
		if err != nil {
			return nil, 0, nil, false
		}
		p.skipSep()
		v, _, vt, err := p.splitNet()
		if err != nil {
			return nil, 0, nil, false
		}
		if kt == ',' && string(k) == key {
			return v, vt, p.d[p.i:], true
		}
		if r, rt, rest, ok := findIn(v, vt, key); ok {
			return r, rt, rest, true
		}
	}
}

func findInArray(payload []byte, key string) ([]byte, byte, []byte, bool) {
	p := newParser(payload, 0, newOpts(nil))
	for {
		p.skipSep()
		if p.eof() {
			return nil, 0, nil, false
		}
		v, _, vt, err := p.splitNet()
		if err != nil {
			return nil, 0, nil, false
		}
		if r, rt, rest, ok := findIn(v, vt, key); ok {
			return r, rt, rest, true
		}
	}
}
