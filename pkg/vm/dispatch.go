package vm

// opHandler executes one decoded instruction against the VM's state.
type opHandler func(m *VM, instr Instruction) error

// dispatch maps an opcode's FNV-1a hash (computed once in opcodes.go) to
// the function that implements it. struct, class, field, method and
// end_class have no entry: they are consumed structurally by prescan and
// loadClassIfNeeded and never reach Step as the current instruction.
// label does have one, a no-op, since control can fall through to it.
var dispatch = map[uint32]opHandler{
	opLabel: opLabelHandler,

	opPushConst: opPushConstHandler,

	opUInc: opUIncHandler,
	opUDec: opUDecHandler,
	opIInc: opIIncHandler,
	opIDec: opIDecHandler,
	opFInc: opFIncHandler,
	opFDec: opFDecHandler,

	opUAdd: opUAddHandler,
	opUSub: opUSubHandler,
	opUMul: opUMulHandler,
	opUDiv: opUDivHandler,
	opUMod: opUModHandler,

	opIAdd: opIAddHandler,
	opISub: opISubHandler,
	opIMul: opIMulHandler,
	opIDiv: opIDivHandler,
	opIMod: opIModHandler,

	opFAdd: opFAddHandler,
	opFSub: opFSubHandler,
	opFMul: opFMulHandler,
	opFDiv: opFDivHandler,
	opFMod: opFModHandler,

	opStrAdd:   opStrAddHandler,
	opStrLen:   opStrLenHandler,
	opStrGet:   opStrGetHandler,
	opStrSet:   opStrSetHandler,
	opStrBytes: opStrBytesHandler,
	opStrUpper: opStrUpperHandler,
	opStrLower: opStrLowerHandler,
	opStrEq:    opStrEqHandler,
	opStrNeq:   opStrNeqHandler,

	opCast: opCastHandler,

	opStoreVar: opStoreVarHandler,
	opLoadVar:  opLoadVarHandler,
	opFree:     opFreeHandler,

	opClone: opCloneHandler,

	opPrint: opPrintHandler,
	opInput: opInputHandler,

	opCall:        opCallHandler,
	opCallDynamic: opCallDynamicHandler,
	opRet:         opRetHandler,

	opNew:        opNewHandler,
	opSetField:   opSetFieldHandler,
	opLoadField:  opLoadFieldHandler,
	opCallMethod: opCallMethodHandler,
	opLoadThis:   opLoadThisHandler,

	opNewArray: opNewArrayHandler,
	opArraySet: opArraySetHandler,
	opArrayGet: opArrayGetHandler,
	opArrayLen: opArrayLenHandler,

	opUEq:  opUEqHandler,
	opUNeq: opUNeqHandler,
	opULt:  opULtHandler,
	opUGt:  opUGtHandler,
	opULte: opULteHandler,
	opUGte: opUGteHandler,

	opIEq:  opIEqHandler,
	opINeq: opINeqHandler,
	opILt:  opILtHandler,
	opIGt:  opIGtHandler,
	opILte: opILteHandler,
	opIGte: opIGteHandler,

	opFEq:  opFEqHandler,
	opFNeq: opFNeqHandler,
	opFLt:  opFLtHandler,
	opFGt:  opFGtHandler,
	opFLte: opFLteHandler,
	opFGte: opFGteHandler,

	opAnd: opAndHandler,
	opOr:  opOrHandler,
	opNot: opNotHandler,

	opJump:        opJumpHandler,
	opJumpIfTrue:  opJumpIfTrueHandler,
	opJumpIfFalse: opJumpIfFalseHandler,
	opJumpIfNull:  opJumpIfNullHandler,

	opSleep: opSleepHandler,
	opHalt:  opHaltHandler,
}
