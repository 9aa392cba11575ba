package mach

// Special is a special-purpose register slot. Slot assignments follow the
// architecture's fixed special-register table and are not configurable.
type Special int

//go:generate go tool stringer -linecomment -type=Special
const (
	SPECIAL_RB  = Special(0)  // rB
	SPECIAL_RD  = Special(1)  // rD
	SPECIAL_RE  = Special(2)  // rE
	SPECIAL_RH  = Special(3)  // rH
	SPECIAL_RJ  = Special(4)  // rJ
	SPECIAL_RM  = Special(5)  // rM
	SPECIAL_RR  = Special(6)  // rR
	SPECIAL_RBB = Special(7)  // rBB
	SPECIAL_RC  = Special(8)  // rC
	SPECIAL_RN  = Special(9)  // rN
	SPECIAL_RO  = Special(10) // rO
	SPECIAL_RS  = Special(11) // rS
	SPECIAL_RI  = Special(12) // rI
	SPECIAL_RT  = Special(13) // rT
	SPECIAL_RTT = Special(14) // rTT
	SPECIAL_RK  = Special(15) // rK
	SPECIAL_RQ  = Special(16) // rQ
	SPECIAL_RU  = Special(17) // rU
	SPECIAL_RV  = Special(18) // rV
	SPECIAL_RG  = Special(19) // rG
	SPECIAL_RL  = Special(20) // rL
	SPECIAL_RA  = Special(21) // rA
	SPECIAL_RF  = Special(22) // rF
	SPECIAL_RP  = Special(23) // rP
	SPECIAL_RW  = Special(24) // rW
	SPECIAL_RX  = Special(25) // rX
	SPECIAL_RY  = Special(26) // rY
	SPECIAL_RZ  = Special(27) // rZ
	SPECIAL_RWW = Special(28) // rWW
	SPECIAL_RXX = Special(29) // rXX
	SPECIAL_RYY = Special(30) // rYY
	SPECIAL_RZZ = Special(31) // rZZ
)

// SPECIAL_COUNT is the number of special-register slots.
const SPECIAL_COUNT = 32

var _special_names map[string]Special

func init() {
	_special_names = make(map[string]Special, SPECIAL_COUNT)
	for sp := Special(0); sp < SPECIAL_COUNT; sp++ {
		_special_names[sp.String()] = sp
	}
}

// SpecialByName returns the slot of a special-register mnemonic.
func SpecialByName(name string) (sp Special, ok bool) {
	sp, ok = _special_names[name]
	return
}
