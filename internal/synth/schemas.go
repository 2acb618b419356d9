// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package synth

import (
	"github.com/google/uuid"

	"github.com/toeirei/walletconv/internal/model"
)

const (
	electrumSeedVersion = 17
	keystoreVersion     = 3
)

// keystoreNamespace seeds the deterministic keystore ids.
var keystoreNamespace = uuid.MustParse("6f1d7c3e-2a4b-5c8d-9e0f-1a2b3c4d5e6f")

// --- wallet / json / dat ---

type walletFile struct {
	Keystore      any    `json:"keystore"`
	WalletType    string `json:"wallet_type"`
	SeedVersion   int    `json:"seed_version"`
	UseEncryption bool   `json:"use_encryption"`
}

type bip39Keystore struct {
	Type     string  `json:"type"`
	Seed     string  `json:"seed"`
	Password *string `json:"password"`
}

type importedKeystore struct {
	Type     string            `json:"type"`
	Keypairs map[string]string `json:"keypairs"`
}

type bip32Keystore struct {
	Type string `json:"type"`
	Xpub string `json:"xpub"`
}

func imported(secret string) importedKeystore {
	return importedKeystore{Type: "imported", Keypairs: map[string]string{"imported_address": secret}}
}

func buildWallet(m Material) any {
	var ks any
	switch m.Tag {
	case model.TagMnemonic:
		ks = bip39Keystore{Type: "bip39", Seed: m.Mnemonic}
	case model.TagWIF, model.TagPrivateKey:
		ks = imported(m.PrivateKey)
	case model.TagExtendedKey:
		ks = bip32Keystore{Type: "bip32", Xpub: m.ExtendedKey}
	default:
		ks = imported(m.Secret())
	}
	return walletFile{Keystore: ks, WalletType: "standard", SeedVersion: electrumSeedVersion}
}

// --- electrum ---

type electrumFile struct {
	Keystore      any               `json:"keystore"`
	WalletType    string            `json:"wallet_type"`
	SeedVersion   int               `json:"seed_version"`
	UseEncryption bool              `json:"use_encryption"`
	Addresses     electrumAddresses `json:"addresses"`
}

type electrumAddresses struct {
	Receiving []string `json:"receiving"`
	Change    []string `json:"change"`
}

type electrumSeedKeystore struct {
	Type string `json:"type"`
	Seed string `json:"seed"`
	Xpub string `json:"xpub"`
	Xprv string `json:"xprv"`
}

type electrumBip32Keystore struct {
	Type string `json:"type"`
	Xpub string `json:"xpub"`
	Xprv string `json:"xprv"`
}

func buildElectrum(m Material) any {
	var ks any
	switch m.Tag {
	case model.TagMnemonic:
		ks = electrumSeedKeystore{Type: "bip32", Seed: m.Mnemonic, Xpub: PlaceholderXpub, Xprv: PlaceholderXprv}
	case model.TagExtendedKey:
		ks = electrumBip32Keystore{Type: "bip32", Xpub: m.XPub(), Xprv: m.XPrv()}
	case model.TagWIF, model.TagPrivateKey:
		ks = imported(m.PrivateKey)
	default:
		ks = imported(m.Secret())
	}
	return electrumFile{
		Keystore:    ks,
		WalletType:  "standard",
		SeedVersion: electrumSeedVersion,
		Addresses: electrumAddresses{
			Receiving: []string{m.EthAddress()},
			Change:    []string{},
		},
	}
}

// --- exodus ---

type exodusFile struct {
	Version    string        `json:"version"`
	Encrypted  bool          `json:"encrypted"`
	Mnemonic   string        `json:"mnemonic"`
	PrivateKey string        `json:"private_key"`
	Assets     []exodusAsset `json:"assets"`
}

type exodusAsset struct {
	Name    string `json:"name"`
	Ticker  string `json:"ticker"`
	Address string `json:"address"`
}

func buildExodus(m Material) any {
	return exodusFile{
		Version:    "1.0",
		Mnemonic:   m.Mnemonic,
		PrivateKey: m.PrivateKey,
		Assets: []exodusAsset{
			{Name: "bitcoin", Ticker: "BTC", Address: PlaceholderBitcoinAddress},
			{Name: "ethereum", Ticker: "ETH", Address: m.EthAddress()},
		},
	}
}

// --- mycelium ---

type myceliumFile struct {
	Backup myceliumBackup `json:"mycelium_backup"`
}

type myceliumBackup struct {
	Version    string            `json:"version"`
	MasterSeed string            `json:"master_seed"`
	Accounts   []myceliumAccount `json:"accounts"`
}

type myceliumAccount struct {
	Index      int    `json:"index"`
	Type       string `json:"type"`
	Xpub       string `json:"xpub"`
	PrivateKey string `json:"private_key"`
	Address    string `json:"address"`
}

func buildMycelium(m Material) any {
	accType := "hd"
	if m.Tag == model.TagWIF || m.Tag == model.TagPrivateKey || m.Tag == model.TagText || m.Tag == model.TagJSON {
		accType = "single_key"
	}
	return myceliumFile{Backup: myceliumBackup{
		Version:    "2.0",
		MasterSeed: m.Mnemonic,
		Accounts: []myceliumAccount{{
			Type:       accType,
			Xpub:       m.XPub(),
			PrivateKey: m.PrivateKey,
			Address:    m.EthAddress(),
		}},
	}}
}

// --- trezor ---

type trezorFile struct {
	Device               string          `json:"device"`
	Model                string          `json:"model"`
	Firmware             string          `json:"firmware"`
	PassphraseProtection bool            `json:"passphrase_protection"`
	Mnemonic             string          `json:"mnemonic"`
	PrivateKey           string          `json:"private_key"`
	Accounts             []trezorAccount `json:"accounts"`
}

type trezorAccount struct {
	Coin    string `json:"coin"`
	Path    string `json:"path"`
	Xpub    string `json:"xpub"`
	Address string `json:"address"`
}

func buildTrezor(m Material) any {
	return trezorFile{
		Device:     "trezor",
		Model:      "Trezor Model T",
		Firmware:   "2.6.0",
		Mnemonic:   m.Mnemonic,
		PrivateKey: m.PrivateKey,
		Accounts: []trezorAccount{
			{Coin: "bitcoin", Path: "m/84'/0'/0'", Xpub: m.XPub(), Address: PlaceholderBitcoinAddress},
			{Coin: "ethereum", Path: "m/44'/60'/0'/0/0", Xpub: PlaceholderXpub, Address: m.EthAddress()},
		},
	}
}

// --- ledger ---

type ledgerFile struct {
	Device         string          `json:"device"`
	Model          string          `json:"model"`
	AppVersion     string          `json:"app_version"`
	RecoveryPhrase string          `json:"recovery_phrase"`
	PrivateKey     string          `json:"private_key"`
	Accounts       []ledgerAccount `json:"accounts"`
}

type ledgerAccount struct {
	Currency       string `json:"currency"`
	DerivationPath string `json:"derivation_path"`
	Xpub           string `json:"xpub"`
	Address        string `json:"address"`
}

func buildLedger(m Material) any {
	return ledgerFile{
		Device:         "ledger",
		Model:          "Nano X",
		AppVersion:     "2.1.0",
		RecoveryPhrase: m.Mnemonic,
		PrivateKey:     m.PrivateKey,
		Accounts: []ledgerAccount{
			{Currency: "bitcoin", DerivationPath: "84'/0'/0'", Xpub: m.XPub(), Address: PlaceholderBitcoinAddress},
			{Currency: "ethereum", DerivationPath: "44'/60'/0'/0/0", Xpub: PlaceholderXpub, Address: m.EthAddress()},
		},
	}
}

// --- metamask ---

type metamaskFile struct {
	Version    int            `json:"version"`
	ID         string         `json:"id"`
	Address    string         `json:"address"`
	Crypto     keystoreCrypto `json:"crypto"`
	Mnemonic   string         `json:"mnemonic"`
	PrivateKey string         `json:"private_key"`
}

type keystoreCrypto struct {
	Cipher       string         `json:"cipher"`
	Ciphertext   string         `json:"ciphertext"`
	CipherParams cipherParams   `json:"cipherparams"`
	KDF          string         `json:"kdf"`
	KDFParams    scryptKDFParam `json:"kdfparams"`
	MAC          string         `json:"mac"`
}

type cipherParams struct {
	IV string `json:"iv"`
}

type scryptKDFParam struct {
	DKLen int    `json:"dklen"`
	N     int    `json:"n"`
	P     int    `json:"p"`
	R     int    `json:"r"`
	Salt  string `json:"salt"`
}

func placeholderCrypto() keystoreCrypto {
	return keystoreCrypto{
		Cipher:       "aes-128-ctr",
		Ciphertext:   PlaceholderCiphertext,
		CipherParams: cipherParams{IV: PlaceholderIV},
		KDF:          "scrypt",
		KDFParams:    scryptKDFParam{DKLen: 32, N: 262144, P: 1, R: 8, Salt: PlaceholderSalt},
		MAC:          PlaceholderMAC,
	}
}

// keystoreID derives a stable UUIDv5 from the material.
func keystoreID(seed string) string {
	return uuid.NewSHA1(keystoreNamespace, []byte(seed)).String()
}

func buildMetaMask(m Material) any {
	return metamaskFile{
		Version:    keystoreVersion,
		ID:         keystoreID(m.Raw),
		Address:    m.EthAddress(),
		Crypto:     placeholderCrypto(),
		Mnemonic:   m.Mnemonic,
		PrivateKey: m.PrivateKey,
	}
}

// --- coinbase ---

type coinbaseFile struct {
	Wallet coinbaseWallet `json:"coinbase_wallet"`
}

type coinbaseWallet struct {
	Version        string `json:"version"`
	Network        string `json:"network"`
	RecoveryPhrase string `json:"recovery_phrase"`
	PrivateKey     string `json:"private_key"`
	Address        string `json:"address"`
	ImportType     string `json:"import_type"`
}

func buildCoinbase(m Material) any {
	return coinbaseFile{Wallet: coinbaseWallet{
		Version:        "1.0",
		Network:        "ethereum",
		RecoveryPhrase: m.Mnemonic,
		PrivateKey:     m.PrivateKey,
		Address:        m.EthAddress(),
		ImportType:     m.Kind(),
	}}
}

// --- binance ---

type binanceFile struct {
	Wallet binanceWallet `json:"binance_wallet"`
}

type binanceWallet struct {
	Version    string `json:"version"`
	Chain      string `json:"chain"`
	Mnemonic   string `json:"mnemonic"`
	PrivateKey string `json:"private_key"`
	Address    string `json:"address"`
	Encrypted  bool   `json:"encrypted"`
}

func buildBinance(m Material) any {
	return binanceFile{Wallet: binanceWallet{
		Version:    "1.0",
		Chain:      "BSC",
		Mnemonic:   m.Mnemonic,
		PrivateKey: m.PrivateKey,
		Address:    m.EthAddress(),
	}}
}

// --- trust wallet ---

type trustFile struct {
	Wallet trustWallet `json:"trust_wallet"`
}

type trustWallet struct {
	Version    string      `json:"version"`
	Name       string      `json:"name"`
	Type       string      `json:"type"`
	Mnemonic   string      `json:"mnemonic"`
	PrivateKey string      `json:"private_key"`
	Coins      []trustCoin `json:"coins"`
}

type trustCoin struct {
	CoinType int    `json:"coin_type"`
	Symbol   string `json:"symbol"`
	Address  string `json:"address"`
}

func buildTrustWallet(m Material) any {
	return trustFile{Wallet: trustWallet{
		Version:    "1.0",
		Name:       "Imported Wallet",
		Type:       m.Kind(),
		Mnemonic:   m.Mnemonic,
		PrivateKey: m.PrivateKey,
		Coins: []trustCoin{
			{CoinType: 0, Symbol: "BTC", Address: PlaceholderBitcoinAddress},
			{CoinType: 60, Symbol: "ETH", Address: m.EthAddress()},
		},
	}}
}
