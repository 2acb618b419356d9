// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package classify

// Kind is the result of Detect.
type Kind int

const (
	KindUnknown Kind = iota
	KindWalletJSON
	KindWIF
	KindPrivateKey
	KindMnemonic
	KindExtendedKey
	KindEthereumAddress
	// KindMultiple is only produced by ClassifyContent.
	KindMultiple
)

var kindInfo = map[Kind]struct{ label, messageID string }{
	KindUnknown:         {"Unknown", "kind.unknown"},
	KindWalletJSON:      {"Wallet JSON", "kind.wallet_json"},
	KindWIF:             {"WIF Private Key", "kind.wif"},
	KindPrivateKey:      {"Private Key (Hex)", "kind.private_key"},
	KindMnemonic:        {"Mnemonic Phrase", "kind.mnemonic"},
	KindExtendedKey:     {"Extended Key", "kind.extended_key"},
	KindEthereumAddress: {"Ethereum Address", "kind.ethereum_address"},
	KindMultiple:        {"Multiple Credentials", "kind.multiple"},
}

// Label is the stable English label.
func (k Kind) Label() string {
	if i, ok := kindInfo[k]; ok {
		return i.label
	}
	return kindInfo[KindUnknown].label
}

// MessageID is the i18n key for the label.
func (k Kind) MessageID() string {
	if i, ok := kindInfo[k]; ok {
		return i.messageID
	}
	return kindInfo[KindUnknown].messageID
}

func (k Kind) String() string { return k.Label() }
