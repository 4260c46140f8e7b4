package cli

/*
 * Licensed under LGPL-3.0.
 *
 * You can get a copy of the LGPL-3.0 License at
 *
 * https://www.gnu.org/licenses/lgpl-3.0.en.html
 *
 * @wcgcyx - https://github.com/wcgcyx
 */

import (
	"fmt"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	logging "github.com/ipfs/go-log"
	"github.com/urfave/cli/v2"
	"github.com/wcgcyx/l2core/bytecode"
	"github.com/wcgcyx/l2core/config"
	"github.com/wcgcyx/l2core/forks"
	"github.com/wcgcyx/l2core/l1fee"
	"github.com/wcgcyx/l2core/ledger"
	"github.com/wcgcyx/l2core/statestore"
)

// Logger
var log = logging.Logger("cli")

func runAnalyze(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expect exactly one argument, got %v", c.Args().Len())
	}
	fork := forks.Latest
	if c.IsSet("fork") {
		var err error
		fork, err = forks.ParseFork(c.String("fork"))
		if err != nil {
			return err
		}
	}
	cfg := forks.GetConfig(fork)
	code, err := bytecode.Decode(c.Args().First())
	if err != nil {
		return err
	}
	locked := code.Lock(cfg.Opcodes)
	fmt.Println("Fork:          ", cfg.Fork)
	fmt.Println("Length:        ", locked.Len())
	fmt.Println("Hash:          ", locked.Hash())
	fmt.Println("Keccak hash:   ", locked.KeccakHash())
	fmt.Println("First block gas:", locked.JumpTable().FirstBlockGas())
	for i := 0; i < locked.Len(); i++ {
		if locked.JumpTable().IsJumpdest(uint64(i)) {
			fmt.Printf("Jumpdest at %v, block gas %v\n", i, locked.JumpTable().BlockGas(uint64(i)))
		}
	}
	return nil
}

// openStore opens the statestore behind the configured data dir.
func openStore(c *cli.Context) (statestore.StateStore, error) {
	conf, err := config.NewConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("path") {
		log.Infof("Override path to be %v", c.String("path"))
		conf.Path = c.String("path")
	}
	caps := ledger.Capabilities{
		ProverCodeHash: conf.ProverCodeHash,
		CodeSizeCache:  conf.CodeSizeCache,
	}
	return statestore.NewStateStoreImpl(c.Context, statestore.Opts{
		Path:         filepath.Join(conf.Path, "statedata"),
		ReadTimeout:  conf.DSTimeout,
		WriteTimeout: conf.DSTimeout,
	}, caps, nil)
}

func runL1Cost(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expect exactly one argument, got %v", c.Args().Len())
	}
	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Shutdown()
	info, err := l1fee.TryFetch(store)
	if err != nil {
		return err
	}
	payload := common.FromHex(c.Args().First())
	fmt.Println("L1 base fee:   ", info.L1BaseFee)
	fmt.Println("Fee overhead:  ", info.L1FeeOverhead)
	fmt.Println("Fee scalar:    ", info.L1BaseFeeScalar)
	fmt.Println("Data gas:      ", info.DataGas(payload))
	fmt.Println("L1 cost:       ", info.TxL1Cost(payload))
	return nil
}

func runAccount(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expect exactly one argument, got %v", c.Args().Len())
	}
	if !common.IsHexAddress(c.Args().First()) {
		return fmt.Errorf("invalid address %v", c.Args().First())
	}
	addr := common.HexToAddress(c.Args().First())
	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Shutdown()
	exists, err := store.HasAccount(addr)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Println("Account not found, default record follows.")
	}
	record, err := store.GetAccountValue(addr)
	if err != nil {
		return err
	}
	fmt.Println("Nonce:           ", record.Nonce)
	fmt.Println("Balance:         ", record.Balance)
	fmt.Println("Code hash:       ", record.CodeHash)
	fmt.Println("Keccak code hash:", record.KeccakCodeHash)
	fmt.Println("Code size:       ", record.CodeSize)
	return nil
}
