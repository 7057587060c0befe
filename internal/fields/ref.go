package fields

import "github.com/chaisql/firevalue/internal/model"

// refDatabaseIDOverhead is the fixed budget reserved for a Ref's
// DatabaseId, charged before the document path gets any budget at all.
const refDatabaseIDOverhead = 16

// RefValue identifies a document by the database it lives in and its path
// within that database.
type RefValue struct {
	databaseID model.DatabaseId
	key        model.DocumentKey
}

func NewRef(databaseID model.DatabaseId, key model.DocumentKey) RefValue {
	return RefValue{databaseID: databaseID, key: key}
}

func (RefValue) TypeOrder() TypeOrder { return TypeOrderRef }

func (v RefValue) Value(*Options) any {
	return struct {
		DatabaseID model.DatabaseId
		Path       []string
	}{DatabaseID: v.databaseID, Path: v.key.Segments()}
}

func (v RefValue) Equals(other Value) bool {
	o, ok := other.(RefValue)
	return ok && v.databaseID.Equals(o.databaseID) && v.key.Equals(o.key)
}

// pathBudget is the budget left for the document path once the 16-byte
// DatabaseId reservation is subtracted; it is never negative, and is 0 when
// bytesRemaining doesn't even cover the reservation.
func pathBudget(bytesRemaining uint) int {
	if bytesRemaining <= refDatabaseIDOverhead {
		return 0
	}
	return int(bytesRemaining - refDatabaseIDOverhead)
}

// Compare reserves 16 bytes for the DatabaseId unconditionally. If the
// DatabaseIds differ, the path never gets compared and only the losing
// side's truncated path cost is charged. Otherwise both paths are
// truncated to the remaining budget and compared segment by segment, and
// the smaller side's truncated byte length is charged.
func (v RefValue) Compare(other Value, bytesRemaining uint) SizedComparison {
	o, ok := other.(RefValue)
	if !ok {
		return defaultCompare(v, other, bytesRemaining)
	}

	budget := pathBudget(bytesRemaining)

	if dbCmp := v.databaseID.Compare(o.databaseID); dbCmp != 0 {
		loser := v.key
		if dbCmp > 0 {
			loser = o.key
		}
		byteLength, _ := loser.TruncatedPath(budget)
		return SizedComparison{Cmp: dbCmp, Bytes: refDatabaseIDOverhead + uint(byteLength)}
	}

	lenL, pathL := v.key.TruncatedPath(budget)
	lenR, pathR := o.key.TruncatedPath(budget)
	cmp := model.TruncatedComparator(pathL, pathR)

	minLen := lenL
	if lenR < minLen {
		minLen = lenR
	}
	return SizedComparison{Cmp: cmp, Bytes: refDatabaseIDOverhead + uint(minLen)}
}

func (v RefValue) TruncatedSize(bytesRemaining uint) uint {
	byteLength, _ := v.key.TruncatedPath(pathBudget(bytesRemaining))
	return refDatabaseIDOverhead + uint(byteLength)
}

func (v RefValue) String() string {
	s := v.databaseID.String() + "/documents"
	for _, seg := range v.key.Segments() {
		s += "/" + seg
	}
	return s
}
