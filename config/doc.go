// Package config loads the scheme constants the oracle runs with from a
// TOML file. Every key is optional; missing keys keep the values the
// circuits are compiled with.
//
//	mode             = "fixed"          # or "agreement"
//	address_prefix   = "5265656504298861414514317065875120428884240036965045859626930651245126909"
//	key_domain       = "7503"
//	scalar_bits      = 253
//	keystream_length = 20
//	fixed_scalar     = "123456711"
//	fixed_keystream  = "0x..."          # overrides fixed_scalar
//
//	[public_key]
//	x = "15919299401931535325513703139194931338293993994510664661086800834970360591752"
//	y = "1645780246786685895560641778865228215443840970280597910012614014295481144366"
package config
