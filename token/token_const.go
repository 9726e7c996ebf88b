package token

const (
	Undetermined Token = iota

	Illegal
	Eof

	String
	Number
	RegExp
	PrivateIdentifier

	Plus      // +
	Minus     // -
	Multiply  // *
	Exponent  // **
	Slash     // /
	Remainder // %

	And                // &
	Or                 // |
	ExclusiveOr        // ^
	ShiftLeft          // <<
	ShiftRight         // >>
	UnsignedShiftRight // >>>

	Assign // =

	AddAssign       // +=
	SubtractAssign  // -=
	MultiplyAssign  // *=
	ExponentAssign  // **=
	QuotientAssign  // /=
	RemainderAssign // %=

	AndAssign                // &=
	OrAssign                 // |=
	ExclusiveOrAssign        // ^=
	ShiftLeftAssign          // <<=
	ShiftRightAssign         // >>=
	UnsignedShiftRightAssign // >>>=

	LogicalAndAssign // &&=
	LogicalOrAssign  // ||=
	CoalesceAssign   // ??=

	LogicalAnd // &&
	LogicalOr  // ||
	Coalesce   // ??
	Increment  // ++
	Decrement  // --

	Equal       // ==
	StrictEqual // ===
	Less        // <
	Greater     // >
	Not         // !

	BitwiseNot // ~

	NotEqual       // !=
	StrictNotEqual // !==
	LessOrEqual    // <=
	GreaterOrEqual // >=

	LeftParenthesis // (
	LeftBracket     // [
	LeftBrace       // {
	Comma           // ,
	Period          // .

	RightParenthesis // )
	RightBracket     // ]
	RightBrace       // }
	Semicolon        // ;
	Colon            // :
	QuestionMark     // ?
	QuestionDot      // ?.
	Arrow            // =>
	Ellipsis         // ...

	TemplateHead           // `...${
	TemplateMiddle         // }...${
	TemplateTail           // }...`
	NoSubstitutionTemplate // `...`

	Identifier
	Boolean
	Null

	If
	In
	Do

	Var
	For
	New
	Try

	This
	Else
	Case
	Void
	With
	Enum

	Const
	While
	Break
	Catch
	Throw
	Class
	Super

	Return
	Typeof
	Delete
	Switch
	Import
	Export

	Default
	Finally
	Extends

	Function
	Continue
	Debugger

	InstanceOf

	// Contextual keywords, usable as identifiers in some contexts.
	Let
	Static
	Async
	Await
	Yield
	Of

	firstKeyword = If
	lastKeyword  = Of
)

var token2string = [...]string{
	Illegal:                  "Illegal",
	Eof:                      "Eof",
	String:                   "String",
	Number:                   "Number",
	RegExp:                   "RegExp",
	PrivateIdentifier:        "PrivateIdentifier",
	Boolean:                  "Boolean",
	Null:                     "Null",
	Identifier:               "Identifier",
	TemplateHead:             "TemplateHead",
	TemplateMiddle:           "TemplateMiddle",
	TemplateTail:             "TemplateTail",
	NoSubstitutionTemplate:   "Template",
	Plus:                     "+",
	Minus:                    "-",
	Exponent:                 "**",
	Multiply:                 "*",
	Slash:                    "/",
	Remainder:                "%",
	And:                      "&",
	Or:                       "|",
	ExclusiveOr:              "^",
	ShiftLeft:                "<<",
	ShiftRight:               ">>",
	UnsignedShiftRight:       ">>>",
	Assign:                   "=",
	AddAssign:                "+=",
	SubtractAssign:           "-=",
	MultiplyAssign:           "*=",
	ExponentAssign:           "**=",
	QuotientAssign:           "/=",
	RemainderAssign:          "%=",
	AndAssign:                "&=",
	OrAssign:                 "|=",
	ExclusiveOrAssign:        "^=",
	ShiftLeftAssign:          "<<=",
	ShiftRightAssign:         ">>=",
	UnsignedShiftRightAssign: ">>>=",
	LogicalAndAssign:         "&&=",
	LogicalOrAssign:          "||=",
	CoalesceAssign:           "??=",
	LogicalAnd:               "&&",
	LogicalOr:                "||",
	Coalesce:                 "??",
	Increment:                "++",
	Decrement:                "--",
	Equal:                    "==",
	StrictEqual:              "===",
	Less:                     "<",
	Greater:                  ">",
	Not:                      "!",
	BitwiseNot:               "~",
	NotEqual:                 "!=",
	StrictNotEqual:           "!==",
	LessOrEqual:              "<=",
	GreaterOrEqual:           ">=",
	LeftParenthesis:          "(",
	LeftBracket:              "[",
	LeftBrace:                "{",
	Comma:                    ",",
	Period:                   ".",
	RightParenthesis:         ")",
	RightBracket:             "]",
	RightBrace:               "}",
	Semicolon:                ";",
	Colon:                    ":",
	QuestionMark:             "?",
	QuestionDot:              "?.",
	Arrow:                    "=>",
	Ellipsis:                 "...",
	If:                       "if",
	In:                       "in",
	Do:                       "do",
	Var:                      "var",
	For:                      "for",
	New:                      "new",
	Try:                      "try",
	This:                     "this",
	Else:                     "else",
	Case:                     "case",
	Void:                     "void",
	With:                     "with",
	Enum:                     "enum",
	Const:                    "const",
	While:                    "while",
	Break:                    "break",
	Catch:                    "catch",
	Throw:                    "throw",
	Class:                    "class",
	Super:                    "super",
	Return:                   "return",
	Typeof:                   "typeof",
	Delete:                   "delete",
	Switch:                   "switch",
	Import:                   "import",
	Export:                   "export",
	Default:                  "default",
	Finally:                  "finally",
	Extends:                  "extends",
	Function:                 "function",
	Continue:                 "continue",
	Debugger:                 "debugger",
	InstanceOf:               "instanceof",
	Let:                      "let",
	Static:                   "static",
	Async:                    "async",
	Await:                    "await",
	Yield:                    "yield",
	Of:                       "of",
}

var token2name = [...]string{
	Plus:                     "Add",
	Minus:                    "Sub",
	Multiply:                 "Multiply",
	Exponent:                 "Exponent",
	Slash:                    "Divide",
	Remainder:                "Modulus",
	And:                      "BitwiseAnd",
	Or:                       "BitwiseOr",
	ExclusiveOr:              "BitwiseXOr",
	ShiftLeft:                "LeftShift",
	ShiftRight:               "RightShift",
	UnsignedShiftRight:       "UnsignedRightShift",
	Assign:                   "Assign",
	AddAssign:                "Add",
	SubtractAssign:           "Sub",
	MultiplyAssign:           "Multiply",
	ExponentAssign:           "Exponent",
	QuotientAssign:           "Divide",
	RemainderAssign:          "Modulus",
	AndAssign:                "BitwiseAnd",
	OrAssign:                 "BitwiseOr",
	ExclusiveOrAssign:        "BitwiseXOr",
	ShiftLeftAssign:          "LeftShift",
	ShiftRightAssign:         "RightShift",
	UnsignedShiftRightAssign: "UnsignedRightShift",
	LogicalAndAssign:         "And",
	LogicalOrAssign:          "Or",
	CoalesceAssign:           "Nullish",
	LogicalAnd:               "And",
	LogicalOr:                "Or",
	Coalesce:                 "Nullish",
	Increment:                "Increase",
	Decrement:                "Decrease",
	Equal:                    "Equal",
	StrictEqual:              "StrictEqual",
	NotEqual:                 "NotEqual",
	StrictNotEqual:           "StrictNotEqual",
	Less:                     "LessThan",
	Greater:                  "MoreThan",
	LessOrEqual:              "LessThanEqual",
	GreaterOrEqual:           "MoreThanEqual",
	Not:                      "Not",
	BitwiseNot:               "BitwiseNot",
	In:                       "In",
	InstanceOf:               "InstanceOf",
	Typeof:                   "Typeof",
	Void:                     "Void",
	Delete:                   "Delete",
	Var:                      "Var",
	Const:                    "Const",
	Let:                      "Let",
}

var assign2binary = map[Token]Token{
	AddAssign:                Plus,
	SubtractAssign:           Minus,
	MultiplyAssign:           Multiply,
	ExponentAssign:           Exponent,
	QuotientAssign:           Slash,
	RemainderAssign:          Remainder,
	AndAssign:                And,
	OrAssign:                 Or,
	ExclusiveOrAssign:        ExclusiveOr,
	ShiftLeftAssign:          ShiftLeft,
	ShiftRightAssign:         ShiftRight,
	UnsignedShiftRightAssign: UnsignedShiftRight,
	LogicalAndAssign:         LogicalAnd,
	LogicalOrAssign:          LogicalOr,
	CoalesceAssign:           Coalesce,
}

var keywordTable = map[string]keyword{
	"if":         {token: If},
	"in":         {token: In},
	"do":         {token: Do},
	"var":        {token: Var},
	"for":        {token: For},
	"new":        {token: New},
	"try":        {token: Try},
	"this":       {token: This},
	"else":       {token: Else},
	"case":       {token: Case},
	"void":       {token: Void},
	"with":       {token: With},
	"enum":       {token: Enum},
	"const":      {token: Const},
	"while":      {token: While},
	"break":      {token: Break},
	"catch":      {token: Catch},
	"throw":      {token: Throw},
	"class":      {token: Class},
	"super":      {token: Super},
	"return":     {token: Return},
	"typeof":     {token: Typeof},
	"delete":     {token: Delete},
	"switch":     {token: Switch},
	"import":     {token: Import},
	"export":     {token: Export},
	"default":    {token: Default},
	"finally":    {token: Finally},
	"extends":    {token: Extends},
	"function":   {token: Function},
	"continue":   {token: Continue},
	"debugger":   {token: Debugger},
	"instanceof": {token: InstanceOf},
	"false":      {token: Boolean},
	"true":       {token: Boolean},
	"null":       {token: Null},
	"let":        {token: Let},
	"static":     {token: Static},
	"async":      {token: Async},
	"await":      {token: Await},
	"yield":      {token: Yield},
	"of":         {token: Of},
	"implements": {token: Identifier, strict: true},
	"interface":  {token: Identifier, strict: true},
	"package":    {token: Identifier, strict: true},
	"private":    {token: Identifier, strict: true},
	"protected":  {token: Identifier, strict: true},
	"public":     {token: Identifier, strict: true},
}
