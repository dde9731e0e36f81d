package opcode

// LogicOp is the sub-selector `op` dispatches on. The base set matches the
// table in spec.md §4.3; Emod, Ushr, Sign, Logn, and Round are supplements
// found in original_source/src/vm/instructions.rs's LogicOp enum but absent
// from the distilled table — added here since nothing in spec.md's
// Non-goals excludes extra arithmetic selectors.
type LogicOp int

const (
	Add LogicOp = iota
	Sub
	Mul
	Div
	Idiv
	Mod
	Emod
	Pow
	Equal
	NotEqual
	Land
	LessThan
	LessThanEq
	GreaterThan
	GreaterThanEq
	StrictEqual
	Shl
	Shr
	Ushr
	Or
	And
	Xor
	Not
	Max
	Min
	Angle
	AngleDiff
	Len
	Noise
	Abs
	Sign
	Log
	Logn
	Log10
	Floor
	Ceil
	Round
	Sqrt
	Rand
	Sin
	Cos
	Tan
	Asin
	Acos
	Atan
)

var logicOpNames = map[string]LogicOp{
	"add": Add, "sub": Sub, "mul": Mul, "div": Div, "idiv": Idiv, "mod": Mod,
	"emod": Emod, "pow": Pow, "equal": Equal, "notEqual": NotEqual, "land": Land,
	"lessThan": LessThan, "lessThanEq": LessThanEq, "greaterThan": GreaterThan,
	"greaterThanEq": GreaterThanEq, "strictEqual": StrictEqual, "shl": Shl,
	"shr": Shr, "ushr": Ushr, "or": Or, "and": And, "xor": Xor, "not": Not,
	"max": Max, "min": Min, "angle": Angle, "angleDiff": AngleDiff, "len": Len,
	"noise": Noise, "abs": Abs, "sign": Sign, "log": Log, "logn": Logn,
	"log10": Log10, "floor": Floor, "ceil": Ceil, "round": Round, "sqrt": Sqrt,
	"rand": Rand, "sin": Sin, "cos": Cos, "tan": Tan, "asin": Asin, "acos": Acos,
	"atan": Atan,
}

// LookupLogicOp resolves an `op` selector mnemonic.
func LookupLogicOp(name string) (LogicOp, bool) {
	op, ok := logicOpNames[name]
	return op, ok
}

// Cmp is the comparator `jump` dispatches on.
type Cmp int

const (
	Always Cmp = iota
	CmpEqual
	CmpNotEqual
	CmpLessThan
	CmpLessThanEq
	CmpGreaterThan
	CmpGreaterThanEq
	CmpStrictEqual
)

var cmpNames = map[string]Cmp{
	"always": Always, "equal": CmpEqual, "notEqual": CmpNotEqual,
	"lessThan": CmpLessThan, "lessThanEq": CmpLessThanEq,
	"greaterThan": CmpGreaterThan, "greaterThanEq": CmpGreaterThanEq,
	"strictEqual": CmpStrictEqual,
}

// LookupCmp resolves a `jump` comparator mnemonic.
func LookupCmp(name string) (Cmp, bool) {
	c, ok := cmpNames[name]
	return c, ok
}

// DrawSub is the sub-operation `draw` dispatches on, per spec.md §4.7.
type DrawSub int

const (
	DrawClear DrawSub = iota
	DrawColor
	DrawCol
	DrawStroke
	DrawLine
	DrawRect
	DrawLineRect
	DrawPoly
	DrawLinePoly
	DrawTriangle
	DrawImage
	DrawPrint
	DrawTranslate
	DrawScale
	DrawRotate
	DrawReset
)

var drawSubNames = map[string]DrawSub{
	"clear": DrawClear, "color": DrawColor, "col": DrawCol, "stroke": DrawStroke,
	"line": DrawLine, "rect": DrawRect, "lineRect": DrawLineRect, "poly": DrawPoly,
	"linePoly": DrawLinePoly, "triangle": DrawTriangle, "image": DrawImage,
	"print": DrawPrint, "translate": DrawTranslate, "scale": DrawScale,
	"rotate": DrawRotate, "reset": DrawReset,
}

// LookupDrawSub resolves a `draw` sub-operation mnemonic.
func LookupDrawSub(name string) (DrawSub, bool) {
	d, ok := drawSubNames[name]
	return d, ok
}

// LookupKind is the catalog `lookup` dispatches on.
type LookupKind int

const (
	LookupBlock LookupKind = iota
	LookupUnit
	LookupItem
	LookupLiquid
)

var lookupKindNames = map[string]LookupKind{
	"block": LookupBlock, "unit": LookupUnit, "item": LookupItem, "liquid": LookupLiquid,
}

// LookupLookupKind resolves a `lookup` catalog-kind mnemonic.
func LookupLookupKind(name string) (LookupKind, bool) {
	k, ok := lookupKindNames[name]
	return k, ok
}
