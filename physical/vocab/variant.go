package vocab

// MatchType is the tag of one data-flow match condition.
type MatchType uint32

const (
	MatchInPort MatchType = iota
	MatchDlSrc
	MatchDlDst
	MatchDlType
	MatchVlanId
	MatchVlanPcp
	MatchIpTos
	MatchIpProto
	MatchIpv4Src
	MatchIpv4Dst
	MatchIpv6Src
	MatchIpv6Dst
	MatchTpSrc
	MatchTpDst
)

var MatchTypeList = map[MatchType]string{
	MatchInPort:  "in_port",
	MatchDlSrc:   "dl_src",
	MatchDlDst:   "dl_dst",
	MatchDlType:  "dl_type",
	MatchVlanId:  "vlan_id",
	MatchVlanPcp: "vlan_pcp",
	MatchIpTos:   "ip_tos",
	MatchIpProto: "ip_proto",
	MatchIpv4Src: "ipv4_src",
	MatchIpv4Dst: "ipv4_dst",
	MatchIpv6Src: "ipv6_src",
	MatchIpv6Dst: "ipv6_dst",
	MatchTpSrc:   "tp_src",
	MatchTpDst:   "tp_dst",
}

func (v MatchType) String() string {
	if s, ok := MatchTypeList[v]; ok {
		return s
	}
	return "unknown"
}

// ActionType is the tag of one data-flow action.
type ActionType uint32

const (
	ActionOutput ActionType = iota
	ActionEnqueue
	ActionSetDlSrc
	ActionSetDlDst
	ActionSetVlanId
	ActionSetVlanPcp
	ActionStripVlan
	ActionSetIpv4Src
	ActionSetIpv4Dst
	ActionSetIpTos
	ActionSetTpSrc
	ActionSetTpDst
	ActionSetIpv6Src
	ActionSetIpv6Dst
)

var ActionTypeList = map[ActionType]string{
	ActionOutput:     "output",
	ActionEnqueue:    "enqueue",
	ActionSetDlSrc:   "set_dl_src",
	ActionSetDlDst:   "set_dl_dst",
	ActionSetVlanId:  "set_vlan_id",
	ActionSetVlanPcp: "set_vlan_pcp",
	ActionStripVlan:  "strip_vlan",
	ActionSetIpv4Src: "set_ipv4_src",
	ActionSetIpv4Dst: "set_ipv4_dst",
	ActionSetIpTos:   "set_ip_tos",
	ActionSetTpSrc:   "set_tp_src",
	ActionSetTpDst:   "set_tp_dst",
	ActionSetIpv6Src: "set_ipv6_src",
	ActionSetIpv6Dst: "set_ipv6_dst",
}

func (v ActionType) String() string {
	if s, ok := ActionTypeList[v]; ok {
		return s
	}
	return "unknown"
}
