// Copyright (c) 2023 Paweł Rybak
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package gcm

import "github.com/opentrv/otaesgcm/internal/consts"

// The workspace a caller hands to the With* functions is a discriminated
// union over the three top-level operations, laid out exactly as
// described by the data model: an AES round-key region, then a
// GCM-specific region whose own sub-fields are reused (aliased) between
// steps that never run concurrently within one call.
//
//	Workspace     = AESScratch(RoundKeyBytes) | GCMScratch
//	EncWS         = authKey[16] | ICB[16] | union(GenCDATAWS, GenerateTagWS)
//	EncPaddedWS   = authKey[16] | ICB[16] | union(GenCDATAPaddedWS, GenerateTagWS)
//	DecWS         = authKey[16] | ICB[16] | calculatedTag[16] | union(GenCDATAPaddedWS, GenerateTagWS)
//
//	GenCDATAWS        = ctrBlock[16] | GCTRWorkspace
//	GenCDATAPaddedWS  = ctrBlock[16] | GCTRPaddedWorkspace
//	GCTRWorkspace     = ctrBlock[16] | tmp[16]
//	GCTRPaddedWorkspace = ctrBlock[16]
//	GHASHWorkspace    = ghashTmp[16] | gFieldMultiplyTmp[16]
//	GenerateTagWS     = S[16] | GHASHWorkspace | union(lengthBuffer[16], GCTRPaddedWorkspace)
const (
	blk = consts.BlockSize

	gctrWorkspaceSize       = blk + blk // ctrBlock + tmp
	gctrPaddedWorkspaceSize = blk // ctrBlock only

	genCDATASize       = blk + gctrWorkspaceSize       // ctrBlock + GCTRWorkspace
	genCDATAPaddedSize = blk + gctrPaddedWorkspaceSize // ctrBlock + GCTRPaddedWorkspace

	ghashWorkspaceSize = blk + blk // ghashTmp + gFieldMultiplyTmp

	// union(lengthBuffer, GCTRPaddedWorkspace) — both are exactly one
	// block, so the union's size is just one block.
	generateTagUnionSize = blk
	generateTagSize      = blk + ghashWorkspaceSize + generateTagUnionSize // S + GHASHWorkspace + union
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

var (
	encGCMScratchSize       = 2*blk + maxInt(genCDATASize, generateTagSize)
	encPaddedGCMScratchSize = 2*blk + maxInt(genCDATAPaddedSize, generateTagSize)
	decGCMScratchSize       = 3*blk + maxInt(genCDATAPaddedSize, generateTagSize)

	// RequiredEnc is the total workspace size (AES scratch + GCM
	// scratch) the unpadded Encrypt entry point requires.
	RequiredEnc = consts.RoundKeyBytes + encGCMScratchSize

	// RequiredEncPadded is the workspace size EncryptPadded requires.
	RequiredEncPadded = consts.RoundKeyBytes + encPaddedGCMScratchSize

	// RequiredDec is the workspace size Decrypt requires.
	RequiredDec = consts.RoundKeyBytes + decGCMScratchSize

	// RequiredMax is the largest of the three, sized for a caller that
	// wants one static buffer for every operation.
	RequiredMax = maxInt(RequiredDec, maxInt(RequiredEnc, RequiredEncPadded))
)
