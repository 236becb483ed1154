package vecjson

import "strconv"

// appendInt and appendUint format a node's integer payload for the L5
// serializer. Grounded on the teacher's appendFloat-adjacent helpers in the
// now-superseded parsed_json.go, which likewise wrapped strconv rather than
// hand-rolling decimal conversion.
func appendInt(dst []byte, v int64) []byte {
	return strconv.AppendInt(dst, v, 10)
}

func appendUint(dst []byte, v uint64) []byte {
	return strconv.AppendUint(dst, v, 10)
}
