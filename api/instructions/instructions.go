// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package instructions

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/vechain/seesaw/api/utils"
	"github.com/vechain/seesaw/bucket"
	"github.com/vechain/seesaw/node"
	"github.com/vechain/seesaw/state"
)

type Instructions struct {
	node *node.Node
}

func New(node *node.Node) *Instructions {
	return &Instructions{
		node,
	}
}

func (i *Instructions) handleSendInstruction(w http.ResponseWriter, req *http.Request) error {
	var raw RawInstruction
	if err := utils.ParseJSON(req.Body, &raw); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	instr, err := raw.decode()
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "raw"))
	}

	receipt, err := i.node.Submit(raw.Origin, instr)
	if err != nil {
		if _, ok := bucket.FailureCode(err); ok {
			return utils.BadRequest(err)
		}
		if errors.Is(err, state.ErrInsufficientBalance) {
			return utils.Forbidden(err)
		}
		return err
	}
	return utils.WriteJSON(w, ConvertReceipt(receipt))
}

func (i *Instructions) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").
		Methods(http.MethodPost).
		Name("POST /instructions").
		HandlerFunc(utils.WrapHandlerFunc(i.handleSendInstruction))
}
