package vm

// Opcode mnemonics are hashed once at package init instead of being baked
// in as magic numbers in a switch statement. This keeps the dispatch
// table and OpcodeHash provably in sync (see the hash-determinism
// property in the test suite) at the cost of one extra hash call per
// mnemonic at startup, which is negligible.
var (
	opLabel  = OpcodeHash("label")
	opStruct = OpcodeHash("struct")
	opClass  = OpcodeHash("class")
	opField  = OpcodeHash("field")
	opMethod = OpcodeHash("method")
	opEndClass = OpcodeHash("end_class")

	opPushConst = OpcodeHash("push_const")

	opUInc = OpcodeHash("u_inc")
	opUDec = OpcodeHash("u_dec")
	opIInc = OpcodeHash("i_inc")
	opIDec = OpcodeHash("i_dec")
	opFInc = OpcodeHash("f_inc")
	opFDec = OpcodeHash("f_dec")

	opUAdd = OpcodeHash("u_add")
	opUSub = OpcodeHash("u_sub")
	opUMul = OpcodeHash("u_mul")
	opUDiv = OpcodeHash("u_div")
	opUMod = OpcodeHash("u_mod")

	opIAdd = OpcodeHash("i_add")
	opISub = OpcodeHash("i_sub")
	opIMul = OpcodeHash("i_mul")
	opIDiv = OpcodeHash("i_div")
	opIMod = OpcodeHash("i_mod")

	opFAdd = OpcodeHash("f_add")
	opFSub = OpcodeHash("f_sub")
	opFMul = OpcodeHash("f_mul")
	opFDiv = OpcodeHash("f_div")
	opFMod = OpcodeHash("f_mod")

	opStrAdd   = OpcodeHash("str_add")
	opStrLen   = OpcodeHash("str_len")
	opStrGet   = OpcodeHash("str_get")
	opStrSet   = OpcodeHash("str_set")
	opStrBytes = OpcodeHash("str_bytes")
	opStrUpper = OpcodeHash("str_upper")
	opStrLower = OpcodeHash("str_lower")
	opStrEq    = OpcodeHash("str_eq")
	opStrNeq   = OpcodeHash("str_neq")

	opCast = OpcodeHash("cast")

	opStoreVar = OpcodeHash("store_var")
	opLoadVar  = OpcodeHash("load_var")
	opFree     = OpcodeHash("free")

	opClone = OpcodeHash("clone")

	opPrint = OpcodeHash("print")
	opInput = OpcodeHash("input")

	opCall        = OpcodeHash("call")
	opCallDynamic = OpcodeHash("call_dynamic")
	opRet         = OpcodeHash("ret")

	opNew        = OpcodeHash("new")
	opSetField   = OpcodeHash("set_field")
	opLoadField  = OpcodeHash("load_field")
	opCallMethod = OpcodeHash("call_method")
	opLoadThis   = OpcodeHash("load_this")

	opNewArray  = OpcodeHash("new_array")
	opArraySet  = OpcodeHash("array_set")
	opArrayGet  = OpcodeHash("array_get")
	opArrayLen  = OpcodeHash("array_len")

	opUEq  = OpcodeHash("u_eq")
	opUNeq = OpcodeHash("u_neq")
	opULt  = OpcodeHash("u_lt")
	opUGt  = OpcodeHash("u_gt")
	opULte = OpcodeHash("u_lte")
	opUGte = OpcodeHash("u_gte")

	opIEq  = OpcodeHash("i_eq")
	opINeq = OpcodeHash("i_neq")
	opILt  = OpcodeHash("i_lt")
	opIGt  = OpcodeHash("i_gt")
	opILte = OpcodeHash("i_lte")
	opIGte = OpcodeHash("i_gte")

	opFEq  = OpcodeHash("f_eq")
	opFNeq = OpcodeHash("f_neq")
	opFLt  = OpcodeHash("f_lt")
	opFGt  = OpcodeHash("f_gt")
	opFLte = OpcodeHash("f_lte")
	opFGte = OpcodeHash("f_gte")

	opAnd = OpcodeHash("and")
	opOr  = OpcodeHash("or")
	opNot = OpcodeHash("not")

	opJump         = OpcodeHash("jump")
	opJumpIfTrue   = OpcodeHash("jump_if_true")
	opJumpIfFalse  = OpcodeHash("jump_if_false")
	opJumpIfNull   = OpcodeHash("jump_if_null")

	opSleep = OpcodeHash("sleep")
	opHalt  = OpcodeHash("halt")

	// push_const / cast / print / input type tags.
	typeUnt    = OpcodeHash("unt")
	typeInt    = OpcodeHash("int")
	typeFloat  = OpcodeHash("float")
	typeStr    = OpcodeHash("str")
	typeLambda = OpcodeHash("lambda")
	typeChar   = OpcodeHash("char")
	typeRef    = OpcodeHash("ref")
)
