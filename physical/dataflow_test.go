package physical_test

import (
	"encoding/json"
	"testing"

	"github.com/opendaylight/vtn-sub010/ipc"
	"github.com/opendaylight/vtn-sub010/physical"
	"github.com/opendaylight/vtn-sub010/physical/vocab"
	tu "github.com/opendaylight/vtn-sub010/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func flowCmn(matches, actions, paths uint32) *ipc.Struct {
	return ipc.NewStruct("val_df_data_flow_cmn").
		SetValid("controller_name", ipc.String("ctr1")).
		SetValid("controller_type", ipc.Uint8(4)).
		SetValid("flow_id", ipc.Uint64(7)).
		SetValid("status", ipc.Uint32(1)).
		Set("vtn_id", ipc.String(""), ipc.NotSupported).
		SetValid("match_count", ipc.Uint32(matches)).
		SetValid("action_count", ipc.Uint32(actions)).
		Set("path_info_count", ipc.Uint32(paths), ipc.Invalid)
}

func matchTag(t vocab.MatchType) *ipc.Struct {
	return ipc.NewStruct("val_df_flow_match").SetValid("match_type", ipc.Uint32(t))
}

func actionTag(t vocab.ActionType) *ipc.Struct {
	return ipc.NewStruct("val_df_flow_action").SetValid("action_type", ipc.Uint32(t))
}

func controllerUnit() ipc.Stream {
	return ipc.Stream{
		flowCmn(4, 3, 1),
		matchTag(vocab.MatchInPort),
		ipc.NewStruct("val_df_flow_match_in_port").SetValid("in_port", ipc.Uint32(3)),
		matchTag(vocab.MatchDlSrc),
		ipc.NewStruct("val_df_flow_match_dl_addr").
			SetValid("dl_addr", ipc.Bytes{0, 0x11, 0x22, 0x33, 0x44, 0x55}).
			SetValid("v_mask", ipc.Uint8(1)).
			SetValid("dl_addr_mask", ipc.Bytes{0xff, 0xff, 0xff, 0, 0, 0}),
		matchTag(vocab.MatchVlanId),
		ipc.NewStruct("val_df_flow_match_vlan_id").SetValid("vlan_id", ipc.Uint16(65535)),
		matchTag(vocab.MatchTpDst),
		ipc.NewStruct("val_df_flow_match_tp_port").
			SetValid("tp_port", ipc.Uint16(80)).
			SetValid("v_mask", ipc.Uint8(0)).
			SetValid("tp_port_mask", ipc.Uint16(0xffff)),
		actionTag(vocab.ActionOutput),
		ipc.NewStruct("val_df_flow_action_output_port").SetValid("output_port", ipc.Uint32(9)),
		actionTag(vocab.ActionStripVlan),
		ipc.NewStruct("val_df_flow_action_strip_vlan"),
		actionTag(vocab.ActionSetVlanId),
		ipc.NewStruct("val_df_flow_action_set_vlan_id").SetValid("vlan_id", ipc.Uint16(100)),
		ipc.NewStruct("val_df_data_flow_path_info").
			SetValid("switch_id", ipc.String("sw1")).
			SetValid("in_port", ipc.String("p1")).
			SetValid("out_port", ipc.String("p2")),
	}
}

const unitJson = `{"controllerid":"ctr1","controllertype":"OpenDaylight","flowid":"7","status":"activated",` +
	`"match":{"inport":["3"],"macsrcaddr":["00.11.22.33.44.55"],"macsrcaddr_mask":["ff.ff.ff.00.00.00"],"vlanid":[""],"l4dstport":["80"]},` +
	`"action":{"outputport":["9"],"stripvlanheader":true,"setvlanid":["100"]},` +
	`"pathinfos":[{"switchid":"sw1","inport":"p1","outport":"p2"}]}`

func dataFlowStream(units int, reasonValid ipc.Validity) ipc.Stream {
	stream := ipc.Stream{
		ipc.Uint32(physical.KeyTypeDataFlow),
		ipc.NewStruct("key_dataflow"),
		ipc.Uint32(1),
		ipc.NewStruct("val_df_data_flow").
			Set("reason", ipc.Uint32(0), reasonValid).
			Set("controller_count", ipc.Uint32(units), reasonValid),
	}
	for range units {
		stream = append(stream, controllerUnit()...)
	}
	return stream
}

func decodeVendor(t *testing.T, kind physical.Kind, stream ipc.Stream, ctx physical.Context) (string, error) {
	dec := physical.NewDecoder(physical.VendorNames{"odc": "OpenDaylight"}, nil)
	obj, err := dec.Decode(kind, stream, ctx)
	if err != nil {
		return "", err
	}
	tu.SetT(t)
	return string(tu.NoErr(json.Marshal(obj))), nil
}

func TestDecodeDataFlow(t *testing.T) {
	tu.SetT(t)
	out := tu.NoErr(decodeVendor(t, physical.KindDataFlow, dataFlowStream(2, ipc.Valid), showState))
	require.Equal(t,
		`{"dataflows":[{"reason":"success","controllerdataflows":[`+unitJson+`,`+unitJson+`]}]}`,
		out)

	// reason and controller_count are honored even when flagged invalid.
	out = tu.NoErr(decodeVendor(t, physical.KindDataFlow, dataFlowStream(1, ipc.Invalid), listNormal))
	require.Equal(t,
		`{"dataflows":[{"reason":"success","controllerdataflows":[`+unitJson+`]}]}`,
		out)
}

func TestDecodeControllerDataFlow(t *testing.T) {
	tu.SetT(t)
	inst := append(ipc.Stream{
		ipc.Uint32(physical.KeyTypeControllerDataFlow),
		ipc.NewStruct("key_ctr_dataflow").SetValid("controller_name", ipc.String("ctr1")),
	}, controllerUnit()...)

	out := tu.NoErr(decodeVendor(t, physical.KindControllerDataFlow, inst, showState))
	require.Equal(t, `{"dataflow":`+unitJson+`}`, out)

	out = tu.NoErr(decodeVendor(t, physical.KindControllerDataFlow, append(inst, inst...), listNormal))
	require.Equal(t, `{"dataflows":[`+unitJson+`,`+unitJson+`]}`, out)
}

func TestDecodeDataFlowEmptySubStreams(t *testing.T) {
	tu.SetT(t)
	inst := ipc.Stream{
		ipc.Uint32(physical.KeyTypeControllerDataFlow),
		ipc.NewStruct("key_ctr_dataflow"),
		flowCmn(1, 0, 0),
		matchTag(vocab.MatchIpv4Src),
		ipc.NewStruct("val_df_flow_match_ipv4_addr").
			Set("ipv4_addr", ipc.IPv4{10, 0, 0, 1}, ipc.NotSupported).
			SetValid("v_mask", ipc.Uint8(0)),
	}
	out := tu.NoErr(decodeVendor(t, physical.KindControllerDataFlow, inst, showState))
	require.Equal(t,
		`{"dataflow":{"controllerid":"ctr1","controllertype":"OpenDaylight","flowid":"7","status":"activated"}}`,
		out)
}

func TestDecodeDataFlowCardinality(t *testing.T) {
	// One match announced, none present.
	inst := ipc.Stream{
		ipc.Uint32(physical.KeyTypeControllerDataFlow),
		ipc.NewStruct("key_ctr_dataflow"),
		flowCmn(1, 0, 0),
	}
	_, err := decodeVendor(t, physical.KindControllerDataFlow, inst, showState)
	require.ErrorIs(t, err, ipc.ErrProtocol)

	// Two controller units announced, one present.
	stream := dataFlowStream(1, ipc.Valid)
	stream[3].(*ipc.Struct).SetValid("controller_count", ipc.Uint32(2))
	_, err = decodeVendor(t, physical.KindDataFlow, stream, showState)
	require.ErrorIs(t, err, ipc.ErrProtocol)
}

func TestDecodeDataFlowUnknownTag(t *testing.T) {
	inst := ipc.Stream{
		ipc.Uint32(physical.KeyTypeControllerDataFlow),
		ipc.NewStruct("key_ctr_dataflow"),
		flowCmn(0, 1, 0),
		ipc.NewStruct("val_df_flow_action").SetValid("action_type", ipc.Uint32(99)),
		ipc.NewStruct("payload"),
	}
	_, err := decodeVendor(t, physical.KindControllerDataFlow, inst, showState)
	require.ErrorIs(t, err, ipc.ErrProtocol)
	require.ErrorContains(t, err, "unknown action tag 99")

	inst[2] = flowCmn(1, 0, 0)
	inst[3] = matchTag(vocab.MatchType(14))
	_, err = decodeVendor(t, physical.KindControllerDataFlow, inst, showState)
	require.ErrorIs(t, err, ipc.ErrProtocol)
}

func TestDecodeVariantValues(t *testing.T) {
	tu.SetT(t)
	inst := ipc.Stream{
		ipc.Uint32(physical.KeyTypeControllerDataFlow),
		ipc.NewStruct("key_ctr_dataflow"),
		flowCmn(2, 3, 0),
		matchTag(vocab.MatchIpv4Src),
		ipc.NewStruct("val_df_flow_match_ipv4_addr").
			SetValid("ipv4_addr", ipc.IPv4{10, 0, 0, 1}).
			SetValid("v_mask", ipc.Uint8(1)).
			SetValid("ipv4_addr_mask", ipc.IPv4{255, 255, 255, 0}),
		matchTag(vocab.MatchIpv6Dst),
		ipc.NewStruct("val_df_flow_match_ipv6_addr").
			SetValid("ipv6_addr", ipc.IPv6{0x20, 0x01, 0x0d, 0xb8, 15: 1}).
			SetValid("v_mask", ipc.Uint8(1)).
			SetValid("ipv6_addr_mask", ipc.IPv6{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}),
		actionTag(vocab.ActionEnqueue),
		ipc.NewStruct("val_df_flow_action_enqueue").
			SetValid("output_port", ipc.Uint32(5)).
			SetValid("enqueue_id", ipc.Uint16(2)),
		actionTag(vocab.ActionSetIpv6Src),
		ipc.NewStruct("val_df_flow_action_set_ipv6").SetValid("ipv6_addr", ipc.IPv6{0xfe, 0x80, 15: 1}),
		actionTag(vocab.ActionSetIpv6Dst),
		ipc.NewStruct("val_df_flow_action_set_ipv6").SetValid("ipv6_addr", ipc.IPv6{0x20, 0x01, 0x0d, 0xb8, 15: 2}),
	}
	out := tu.NoErr(decodeVendor(t, physical.KindControllerDataFlow, inst, showState))
	require.Equal(t,
		`{"dataflow":{"controllerid":"ctr1","controllertype":"OpenDaylight","flowid":"7","status":"activated",`+
			`"match":{"ipsrcaddr":["10.0.0.1"],"ipsrcaddr_mask":["255.255.255.0"],`+
			`"ipv6dstaddr":["2001:db8::1"],"ipv6dstaddr_mask":["ffff:ffff:ffff:ffff::"]},`+
			`"action":{"enqueueport":["5"],"queueid":["2"],"setipv6srcaddr":["fe80::1"],"setipv6dstaddr":["2001:db8::2"]}}}`,
		out)
}

func TestDecodeVariantCoverage(t *testing.T) {
	// Every closed tag has a payload layout.
	for m := range vocab.MatchTypeList {
		inst := ipc.Stream{
			ipc.Uint32(physical.KeyTypeControllerDataFlow),
			ipc.NewStruct("key_ctr_dataflow"),
			flowCmn(1, 0, 0),
			matchTag(m),
			ipc.NewStruct("payload"),
		}
		_, err := decodeVendor(t, physical.KindControllerDataFlow, inst, showState)
		require.NoError(t, err, m.String())
	}
	for a := range vocab.ActionTypeList {
		inst := ipc.Stream{
			ipc.Uint32(physical.KeyTypeControllerDataFlow),
			ipc.NewStruct("key_ctr_dataflow"),
			flowCmn(0, 1, 0),
			actionTag(a),
			ipc.NewStruct("payload"),
		}
		_, err := decodeVendor(t, physical.KindControllerDataFlow, inst, showState)
		require.NoError(t, err, a.String())
	}
}
