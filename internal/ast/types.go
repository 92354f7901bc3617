package ast

// StmtKind tags the statement variants.
type StmtKind int

const (
	ILLEGAL StmtKind = iota
	ENTITY_STMT
	FN_STMT
	EXTERN_FN_STMT
	STRUCT_STMT
	TY_STMT
	MACRO_STMT
	OPERATOR_STMT
)

var stmtKindNames = [...]string{
	ILLEGAL:        "illegal",
	ENTITY_STMT:    "entity",
	FN_STMT:        "fn",
	EXTERN_FN_STMT: "extern",
	STRUCT_STMT:    "struct",
	TY_STMT:        "ty",
	MACRO_STMT:     "macro",
	OPERATOR_STMT:  "operator",
}

// String returns the keyword that introduces the statement.
func (k StmtKind) String() string {
	if k < 0 || int(k) >= len(stmtKindNames) {
		return stmtKindNames[ILLEGAL]
	}
	return stmtKindNames[k]
}

// Affix says on which side of a literal or operand a macro/operator applies.
type Affix int

const (
	Prefix Affix = iota
	Suffix
)

func (a Affix) String() string {
	if a == Suffix {
		return "suffix"
	}
	return "prefix"
}

// LiteralType is the kind of literal a literal macro attaches to.
type LiteralType int

const (
	// StringLiteral is "hi there"
	StringLiteral LiteralType = iota
	// CharLiteral is 'k'
	CharLiteral
	// FloatLiteral is 1.0 -4.864 0.865
	FloatLiteral
	// IntLiteral is 27 2 -3 0
	IntLiteral
)

func (l LiteralType) String() string {
	switch l {
	case StringLiteral:
		return "&str"
	case CharLiteral:
		return "char"
	case FloatLiteral:
		return "float"
	default:
		return "int"
	}
}

// FFILanguage is the calling convention of an extern function.
type FFILanguage int

const (
	CLang FFILanguage = iota
)

func (FFILanguage) String() string {
	return "clang"
}
